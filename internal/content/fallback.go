package content

// Canned corpus documents written to disk when a content file is missing or
// empty. They keep the chatbot useful on a fresh install until the real
// content library is provisioned.

func fallbackSubjectContent(subject string) string {
	if text, ok := fallbackSubjects[subject]; ok {
		return text
	}
	return ""
}

var fallbackSubjects = map[string]string{
	"mathematics":    mathematicsFallback,
	"science":        scienceFallback,
	"english":        englishFallback,
	"social_studies": socialStudiesFallback,
}

const mathematicsFallback = `# MATHEMATICS - Complete Learning Guide

## Chapter 1: Number System

**Natural Numbers**
Natural numbers are counting numbers starting from 1, 2, 3, 4, and so on.
These are the first numbers we learn to count with.
Examples: 1, 2, 3, 4, 5, 6, 7, 8, 9, 10...

**Whole Numbers**
Whole numbers include all natural numbers plus zero.
Set of whole numbers: 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10...
Zero is the smallest whole number.

**Integers**
Integers include positive numbers, negative numbers, and zero.
Examples: ...-3, -2, -1, 0, 1, 2, 3...

**Rational Numbers**
Rational numbers can be expressed as fractions where the denominator is not zero.
Examples: 1/2, 3/4, -2/5, 0.5, 0.75
Every integer is also a rational number.

**Irrational Numbers**
Numbers that cannot be expressed as fractions.
Examples: pi, the square root of 2, the square root of 3.
These have non-terminating, non-repeating decimal expansions.

## Chapter 2: Basic Operations

**Addition**
Addition means combining two or more numbers to get their sum.
Symbol: + (plus sign)
Example: 5 + 3 = 8
Properties: commutative (a + b = b + a), associative, and identity (a + 0 = a).

**Subtraction**
Subtraction means finding the difference between two numbers.
Symbol: - (minus sign)
Example: 8 - 3 = 5
Subtraction is the inverse operation of addition.

**Multiplication**
Multiplication is repeated addition or finding the product of numbers.
Symbol: x (times sign)
Example: 4 x 3 = 12 (which is 4 + 4 + 4)
Properties: commutative, associative, identity (a x 1 = a), and zero (a x 0 = 0).

**Division**
Division is splitting a number into equal parts.
Symbol: / (division sign)
Example: 12 / 3 = 4
Division is the inverse operation of multiplication.

## Chapter 3: Order of Operations

**BODMAS Rule**
BODMAS stands for Brackets, Orders, Division, Multiplication, Addition, Subtraction.
First solve operations inside brackets, then powers and roots.
Then solve division and multiplication from left to right.
Finally solve addition and subtraction from left to right.
Example: 2 + 3 x 4 = 14, because multiplication comes before addition.

## Chapter 4: Fractions and Decimals

**Fractions**
A fraction represents a part of a whole.
The top number is the numerator, the bottom number is the denominator.
Example: 3/4 means three parts out of four equal parts.
Fractions with the same value are called equivalent fractions, like 1/2 and 2/4.

**Decimals**
A decimal is another way to write a fraction with denominator 10, 100, 1000 and so on.
Example: 0.5 equals 1/2, and 0.75 equals 3/4.
The first digit after the decimal point shows tenths, the second shows hundredths.

**Percentage**
A percentage is a fraction out of 100.
Example: 50% means 50 out of 100, which equals 1/2.
To convert a fraction to a percentage, multiply it by 100.

## Chapter 5: Geometry Basics

**Shapes and Angles**
A triangle has three sides and three angles that add up to 180 degrees.
A circle is the set of points at a fixed distance from its center.
The area of a rectangle is length multiplied by breadth.
A right angle measures exactly 90 degrees.

**Perimeter, Area and Volume**
Perimeter is the distance around a shape.
Area measures the surface a flat shape covers.
Volume measures the space a solid shape occupies.
Example: a square of side 4 has perimeter 16 and area 16.
`

const scienceFallback = `# SCIENCE - Complete Learning Guide

## Chapter 1: Matter and Materials

**States of Matter**
Matter exists in three main states: solid, liquid, and gas.
Solids have a fixed shape and volume.
Liquids take the shape of their container but keep their volume.
Gases spread out to fill all available space.

**Atoms and Molecules**
All matter is made of tiny particles called atoms.
Atoms join together to form molecules.
Example: a water molecule has two hydrogen atoms and one oxygen atom.

## Chapter 2: Force, Motion and Energy

**Force and Motion**
A force is a push or a pull acting on an object.
Forces can change the speed, direction, or shape of an object.
Gravity is the force that pulls objects toward the earth.
Friction is a force that opposes motion between surfaces.

**Energy**
Energy is the capacity to do work.
Energy comes in many forms: light, heat, sound, electrical, and chemical.
Energy cannot be created or destroyed, only changed from one form to another.
The sun is the main source of energy for life on earth.

**Light and Sound**
Light travels in straight lines and much faster than sound.
Sound is produced by vibrating objects and needs a medium to travel.
That is why we see lightning before we hear thunder.

## Chapter 3: Living Things

**Cells**
The cell is the basic unit of life.
Plants and animals are made of many cells working together.
Plant cells have a cell wall and chloroplasts; animal cells do not.

**Plants**
Green plants make their own food by photosynthesis.
Photosynthesis uses sunlight, water, and carbon dioxide to make food and oxygen.
Roots absorb water, stems carry it, and leaves make the food.

**Animals and Ecosystems**
An ecosystem is a community of living things and their environment.
Food chains show how energy passes from plants to animals.
Herbivores eat plants, carnivores eat animals, and omnivores eat both.

## Chapter 4: Earth and Space

**The Earth**
The earth rotates on its axis once every 24 hours, giving day and night.
The earth revolves around the sun once every 365 days, giving the year.
The earth's atmosphere protects us and contains the oxygen we breathe.

**Weather and Climate**
Weather is the day-to-day condition of the atmosphere.
Climate is the average weather of a place over many years.
The water cycle moves water between the oceans, the air, and the land.
`

const englishFallback = `# ENGLISH - Complete Learning Guide

## Chapter 1: Parts of Speech

**Nouns**
A noun is a naming word for a person, place, animal, or thing.
Examples: teacher, school, dog, book.
Proper nouns name particular people or places and start with a capital letter.

**Verbs**
A verb is a doing word that shows action or state.
Examples: run, write, think, is, have.
Every complete sentence needs a verb.

**Adjectives**
An adjective describes a noun.
Examples: a red apple, a tall building, an interesting story.
Adjectives make writing more vivid and precise.

## Chapter 2: Sentences

**Sentence Structure**
A sentence is a group of words that expresses a complete thought.
Every sentence has a subject and a predicate.
The subject tells who or what; the predicate tells what the subject does.
Example: "The students (subject) finished their homework (predicate)."

**Punctuation**
A sentence begins with a capital letter and ends with a full stop,
question mark, or exclamation mark.
Commas separate items in a list and mark pauses.
Quotation marks show the exact words someone spoke.

## Chapter 3: Tenses

**Present, Past and Future**
The present tense describes what happens now: "I read every day."
The past tense describes what already happened: "I read that book yesterday."
The future tense describes what will happen: "I will read it tomorrow."
Regular verbs form the past tense by adding -ed; irregular verbs change form.

## Chapter 4: Reading and Writing

**Comprehension**
Read the passage slowly and look for the main idea.
Underline key words and reread difficult sentences.
Answer questions in your own words using evidence from the passage.

**Essay and Story Writing**
A good paragraph has one main idea supported by details.
A story needs a beginning, a middle, and an end.
A simile compares using "like" or "as"; a metaphor compares directly.
Always revise your writing for spelling and grammar.

**Vocabulary Building**
Learn a few new words every day and use them in sentences.
A dictionary gives meaning and pronunciation; a thesaurus gives synonyms.
Reading story books is the best way to grow your vocabulary.
`

const socialStudiesFallback = `# SOCIAL STUDIES - Complete Learning Guide

## Chapter 1: History

**Ancient Civilizations**
The earliest Indian civilization grew along the Indus river valley.
Its cities, like Harappa and Mohenjo-daro, had planned streets and drains.
Ancient civilizations also flourished in Egypt, Mesopotamia, and China.

**Medieval and Modern Periods**
The medieval period saw great forts, temples, and new styles of art.
The modern period brought printing, railways, and the struggle for freedom.
India became independent on 15 August 1947.

## Chapter 2: Geography

**Maps and Globes**
A globe is a model of the earth; a map is a flat drawing of it.
Maps use symbols, colors, and a scale to show real places.
The four main directions are north, south, east, and west.

**Landforms and Climate**
Mountains, plateaus, plains, and deserts are major landforms.
Rivers begin in mountains and flow toward the sea.
Climate depends on distance from the equator, height, and distance from the sea.

## Chapter 3: Civics

**Democracy**
In a democracy, the people choose their government by voting.
India is the world's largest democracy.
The constitution is the supreme law that guides the country.

**Rights and Duties**
The constitution gives citizens fundamental rights, like the right to equality
and the right to education.
With rights come duties, like respecting others and protecting public property.
Every citizen aged 18 or older has the right to vote.

**Government**
The government has three branches: the legislature makes laws,
the executive carries them out, and the judiciary interprets them.
Local bodies like panchayats and municipalities manage villages and cities.

## Chapter 4: Culture and Heritage

**Unity in Diversity**
India has many languages, religions, and traditions living together.
Festivals, food, music, and dance vary from state to state.
Historical monuments are our shared heritage and must be protected.
`

const institutionalFallback = `# INSTITUTIONAL FAQS - Complete Information Guide

## Chapter 1: Admission Information

**Admission Process**
Admission applications are typically available from March to May each year.
Online applications can be submitted through the school website.
Offline applications are available at the school office during working hours.
Early applications are encouraged as seats are limited.

**Required Documents**
For new admissions, please bring the birth certificate, the previous school
transfer certificate, the previous year's mark sheet, address proof,
passport-size photographs, and a medical certificate.
Important: original documents are returned after verification.

**Age Criteria**
Age requirements are counted as on March 31st of the admission year.
Nursery requires 3 completed years and Class 1 requires 6 completed years.
For classes 9 and 11 there is a written test covering the previous class syllabus.

## Chapter 2: Fees and Payments

**Fee Structure**
The annual fee is divided into four quarterly installments.
The fee includes tuition, library, laboratory, and sports charges.
Transport fees are charged separately based on distance.

**Fee Deadlines**
Quarterly fees must be deposited by the 10th of April, July, October, and January.
A late fee applies after the deadline.
Note: fees can be paid online, by cheque, or in cash at the school office.

**Scholarships and Concessions**
Merit scholarships are awarded to the top three students of each class.
Fee concessions are available for economically weaker families on application.
Contact: the accounts office for scholarship forms and details.

## Chapter 3: Examinations and Results

**Examination Schedule**
Unit tests are held every month and term examinations twice a year.
The final examination timetable is published two weeks in advance.
Students must carry their identity card to the examination hall.

**Results and Report Cards**
Results are declared within three weeks of the last examination.
Report cards are handed to parents at the parent-teacher meeting.
Rechecking requests must be submitted within one week of the result.

## Chapter 4: Daily Life

**School Timings**
School runs Monday to Saturday from 8:00 AM to 2:30 PM.
The second Saturday of every month is a holiday.
Gates close 10 minutes after the first bell; late arrivals need a gate pass.

**Uniform and Discipline**
The full school uniform is compulsory on all working days.
Mobile phones are not allowed for students.
Important: repeated indiscipline is discussed with parents before any action.

**Transport and Canteen**
School buses cover all major routes in the city.
The canteen serves hygienic vegetarian snacks and lunch.
Bus route changes require a written application to the transport in-charge.

## Chapter 5: Facilities and Contact

**Library and Laboratories**
The library has over ten thousand books and a quiet reading room.
Students may borrow two books at a time for two weeks.
Science laboratories are equipped for classes 6 to 12.

**Contacting the School**
The school office is open 9:00 AM to 4:00 PM on working days.
Contact: the front desk for certificates, fee queries, and appointments.
For urgent matters, parents may meet the principal with a prior appointment.
`
