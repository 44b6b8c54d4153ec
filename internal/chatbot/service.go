package chatbot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/tatvax/edubot/internal/audio"
	"github.com/tatvax/edubot/internal/content"
	"github.com/tatvax/edubot/internal/intent"
	"github.com/tatvax/edubot/internal/language"
	"github.com/tatvax/edubot/internal/observability/metrics"
	"github.com/tatvax/edubot/internal/speech"
	"github.com/tatvax/edubot/internal/translation"
	"github.com/tatvax/edubot/pkg/logging"
)

// Chat modes selected by the client.
const (
	ModeSubjects      = "subjects"
	ModeInstitutional = "institutional"
)

// Relevance breadth per mode, tuned separately because institutional answers
// benefit from more surrounding detail.
const (
	subjectPassages       = 5
	institutionalPassages = 7
)

// Request is a single chat turn.
type Request struct {
	Message  string
	Mode     string
	Language language.Code
	Subject  string
	Modality string
}

// Reply is the assembled answer for one turn.
type Reply struct {
	OriginalQuery    string        `json:"original_query"`
	Response         string        `json:"response"`
	ResponseLanguage language.Code `json:"response_language"`
	DetectedLanguage language.Code `json:"detected_language"`
	ChatMode         string        `json:"chat_mode"`
	Subject          string        `json:"subject"`
	AudioFile        string        `json:"audio_file,omitempty"`
}

// Service runs the full chat pipeline: detect, translate in, classify,
// compose, translate out, synthesize.
type Service struct {
	translator *translation.Pipeline
	classifier *intent.Classifier
	library    *content.Store
	composer   *Composer
	audio      *audio.Manager
	recognizer speech.Recognizer
	history    History

	listenTimeout time.Duration
	phraseTimeout time.Duration

	logger  *logging.Logger
	tracer  trace.Tracer
	metrics *metrics.ChatMetrics
}

// ServiceConfig wires a Service. Translator, Library and History are
// required; the rest have working defaults.
type ServiceConfig struct {
	Translator *translation.Pipeline
	Classifier *intent.Classifier
	Library    *content.Store
	Composer   *Composer
	Audio      *audio.Manager
	Recognizer speech.Recognizer
	History    History
	Logger     *logging.Logger
	Metrics    *metrics.ChatMetrics

	ListenTimeout time.Duration
	PhraseTimeout time.Duration
}

func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Translator == nil {
		return nil, fmt.Errorf("chatbot: translator is required")
	}
	if cfg.Library == nil {
		return nil, fmt.Errorf("chatbot: content library is required")
	}
	if cfg.History == nil {
		return nil, fmt.Errorf("chatbot: history store is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	classifier := cfg.Classifier
	if classifier == nil {
		classifier = intent.NewClassifier(logger)
	}
	composer := cfg.Composer
	if composer == nil {
		composer = NewComposer(nil)
	}
	recognizer := cfg.Recognizer
	if recognizer == nil {
		recognizer = speech.Unavailable{}
	}
	listenTimeout := cfg.ListenTimeout
	if listenTimeout <= 0 {
		listenTimeout = 5 * time.Second
	}
	phraseTimeout := cfg.PhraseTimeout
	if phraseTimeout <= 0 {
		phraseTimeout = 2 * time.Second
	}

	return &Service{
		translator:    cfg.Translator,
		classifier:    classifier,
		library:       cfg.Library,
		composer:      composer,
		audio:         cfg.Audio,
		recognizer:    recognizer,
		history:       cfg.History,
		listenTimeout: listenTimeout,
		phraseTimeout: phraseTimeout,
		logger:        logger.Component("chatbot"),
		tracer:        otel.Tracer("edubot.internal.chatbot"),
		metrics:       cfg.Metrics,
	}, nil
}

// HandleText answers a typed query.
func (s *Service) HandleText(ctx context.Context, req Request) (*Reply, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, fmt.Errorf("empty message")
	}
	if req.Modality == "" {
		req.Modality = "text"
	}
	return s.respond(ctx, req)
}

// HandleVoice captures one utterance and answers it. Audio is always
// generated for voice queries.
func (s *Service) HandleVoice(ctx context.Context, req Request) (*Reply, error) {
	ctx, span := s.tracer.Start(ctx, "chatbot.handle_voice")
	defer span.End()

	text, heard, err := s.recognizer.Listen(ctx, s.listenTimeout, s.phraseTimeout)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.logger.Info("speech recognized", "language", heard, "chars", len([]rune(text)))
	req.Message = text
	req.Modality = "voice"
	return s.respond(ctx, req)
}

func (s *Service) respond(ctx context.Context, req Request) (*Reply, error) {
	ctx, span := s.tracer.Start(ctx, "chatbot.respond")
	defer span.End()

	if req.Mode == "" {
		req.Mode = ModeSubjects
	}
	target := req.Language
	if target == "" || !language.IsSupported(target) {
		target = language.English
	}

	detected := language.Detect(req.Message)
	englishQuery := s.translator.PrepareQuery(ctx, req.Message, detected)
	s.logger.Info("processing query",
		"mode", req.Mode,
		"detected", detected,
		"target", target,
		"modality", req.Modality,
	)

	var response, subject string
	if req.Mode == ModeInstitutional {
		subject = intent.GeneralSubject
		response = s.answerInstitutional(ctx, englishQuery)
	} else {
		subject = req.Subject
		response, subject = s.answerSubject(ctx, englishQuery, subject)
	}

	translated := response
	if target != language.English {
		translated = s.translator.Translate(ctx, response, target, language.English)
	}

	audioFile := s.generateAudio(ctx, translated, target)

	entry := Entry{
		ID:               uuid.NewString(),
		Timestamp:        time.Now(),
		UserMessage:      req.Message,
		BotResponse:      translated,
		DetectedLanguage: detected,
		ResponseLanguage: target,
		Intent:           req.Mode,
		Subject:          subject,
		Mode:             req.Modality,
		AudioFile:        audioFile,
	}
	if err := s.history.Append(ctx, entry); err != nil {
		s.logger.Warn("failed to record conversation entry", "error", err)
	}

	return &Reply{
		OriginalQuery:    req.Message,
		Response:         translated,
		ResponseLanguage: target,
		DetectedLanguage: detected,
		ChatMode:         req.Mode,
		Subject:          subject,
		AudioFile:        audioFile,
	}, nil
}

// answerSubject resolves the subject, pulls matching content and composes an
// educational answer. It returns the answer and the subject actually used.
func (s *Service) answerSubject(ctx context.Context, query, subject string) (string, string) {
	if subject == "" || subject == intent.GeneralSubject {
		if kind, detected := s.classifier.Classify(query); kind == intent.Subject {
			subject = detected
		} else {
			subject = intent.GeneralSubject
		}
	}

	if subject == intent.GeneralSubject || !s.library.HasSubject(subject) {
		return s.composer.GeneralEducational(query), intent.GeneralSubject
	}

	corpus, err := s.library.LoadSubject(ctx, subject)
	if err != nil {
		s.logger.Warn("failed to load subject content", "subject", subject, "error", err)
		return s.composer.GeneralEducational(query), subject
	}

	relevant := content.FindRelevant(query, corpus, subjectPassages)
	return s.composer.ComposeSubject(subject, relevant), subject
}

func (s *Service) answerInstitutional(ctx context.Context, query string) string {
	corpus, err := s.library.LoadInstitutional(ctx)
	if err != nil {
		s.logger.Warn("failed to load institutional content", "error", err)
		return s.composer.GeneralInstitutional()
	}

	relevant := content.FindRelevant(query, corpus, institutionalPassages)
	return s.composer.ComposeInstitutional(relevant)
}

// generateAudio is best effort; the text answer never waits on a failed
// synthesis.
func (s *Service) generateAudio(ctx context.Context, text string, lang language.Code) string {
	if s.audio == nil {
		return ""
	}
	filename, err := s.audio.Generate(ctx, text, lang)
	if err != nil {
		s.logger.Warn("audio generation failed", "language", lang, "error", err)
		return ""
	}
	return filename
}

// Clear wipes the conversation log and all temp audio.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.history.Clear(ctx); err != nil {
		return err
	}
	if s.audio != nil {
		s.audio.Purge()
	}
	s.logger.Info("conversation cleared")
	return nil
}

// Status reports service health for the status endpoint.
type Status struct {
	ServicesInitialized map[string]bool       `json:"services_initialized"`
	ConversationCount   int                   `json:"conversation_count"`
	SupportedLanguages  []language.Code       `json:"supported_languages"`
	AvailableSubjects   []content.SubjectInfo `json:"available_subjects"`
	AudioPlaying        bool                  `json:"audio_playing"`
	ServerTime          string                `json:"server_time"`
	Translation         translation.Stats     `json:"translation"`
	Content             content.Stats         `json:"content"`
}

func (s *Service) Status(ctx context.Context) Status {
	count, err := s.history.Count(ctx)
	if err != nil {
		s.logger.Warn("failed to count conversation entries", "error", err)
	}

	playing := false
	if s.audio != nil {
		playing = s.audio.IsPlaying()
	}

	return Status{
		ServicesInitialized: map[string]bool{
			"translation_service": s.translator != nil,
			"content_manager":     s.library != nil,
			"chatbot_helper":      true,
		},
		ConversationCount:  count,
		SupportedLanguages: language.All(),
		AvailableSubjects:  s.library.Subjects(),
		AudioPlaying:       playing,
		ServerTime:         time.Now().Format(time.RFC3339),
		Translation:        s.translator.Stats(),
		Content:            s.library.Stats(ctx),
	}
}
