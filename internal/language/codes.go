// Package language owns the closed set of languages the chatbot speaks and
// the script-based detector that guesses which one a query is written in.
package language

// Code is an ISO 639-1 language code from the supported set.
type Code string

const (
	English  Code = "en"
	Hindi    Code = "hi"
	Bengali  Code = "bn"
	Marathi  Code = "mr"
	Telugu   Code = "te"
	Tamil    Code = "ta"
	Gujarati Code = "gu"
	Kannada  Code = "kn"
)

// Info carries the per-language tables every supported code must have.
type Info struct {
	Name              string // English display name
	NativeName        string // display name including the native script
	RecognitionLocale string // speech recognition locale, e.g. "hi-IN"
	TTSVoice          string // voice code handed to the TTS engine
}

// Marathi shares the Devanagari script with Hindi and the TTS engine has no
// dedicated Marathi voice, so it synthesizes with the Hindi one.
var infos = map[Code]Info{
	English:  {Name: "English", NativeName: "English", RecognitionLocale: "en-US", TTSVoice: "en"},
	Hindi:    {Name: "Hindi", NativeName: "हिंदी (Hindi)", RecognitionLocale: "hi-IN", TTSVoice: "hi"},
	Bengali:  {Name: "Bengali", NativeName: "বাংলা (Bengali)", RecognitionLocale: "bn-IN", TTSVoice: "bn"},
	Marathi:  {Name: "Marathi", NativeName: "मराठी (Marathi)", RecognitionLocale: "mr-IN", TTSVoice: "hi"},
	Telugu:   {Name: "Telugu", NativeName: "తెలుగు (Telugu)", RecognitionLocale: "te-IN", TTSVoice: "te"},
	Tamil:    {Name: "Tamil", NativeName: "தமிழ் (Tamil)", RecognitionLocale: "ta-IN", TTSVoice: "ta"},
	Gujarati: {Name: "Gujarati", NativeName: "ગુજરાતી (Gujarati)", RecognitionLocale: "gu-IN", TTSVoice: "gu"},
	Kannada:  {Name: "Kannada", NativeName: "ಕನ್ನಡ (Kannada)", RecognitionLocale: "kn-IN", TTSVoice: "kn"},
}

// order fixes the listing order for APIs that enumerate languages.
var order = []Code{English, Hindi, Bengali, Marathi, Telugu, Tamil, Gujarati, Kannada}

// All returns the supported codes in a stable order.
func All() []Code {
	out := make([]Code, len(order))
	copy(out, order)
	return out
}

// IsSupported reports whether code belongs to the supported set.
func IsSupported(code Code) bool {
	_, ok := infos[code]
	return ok
}

// Lookup returns the Info tables for code.
func Lookup(code Code) (Info, bool) {
	info, ok := infos[code]
	return info, ok
}

// NativeName returns the display name with native script, or the code itself
// for unknown codes.
func NativeName(code Code) string {
	if info, ok := infos[code]; ok {
		return info.NativeName
	}
	return string(code)
}

// RecognitionLocale returns the speech-recognition locale for code, defaulting
// to US English.
func RecognitionLocale(code Code) string {
	if info, ok := infos[code]; ok {
		return info.RecognitionLocale
	}
	return "en-US"
}

// TTSVoice returns the voice code for the TTS engine, defaulting to English.
func TTSVoice(code Code) string {
	if info, ok := infos[code]; ok {
		return info.TTSVoice
	}
	return "en"
}

// DisplayNames returns code -> native display name for the language listing
// endpoint.
func DisplayNames() map[Code]string {
	out := make(map[Code]string, len(infos))
	for code, info := range infos {
		out[code] = info.NativeName
	}
	return out
}
