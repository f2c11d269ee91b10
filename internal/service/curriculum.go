package service

// Subjects and Grades span the built-in curriculum.
var (
	Subjects = []string{"Math", "Reading", "Language arts", "Science", "Social studies"}
	Grades   = []string{"K", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}
)

// CurriculumTopic is one suggested (subject, topic) pair for a grade.
type CurriculumTopic struct {
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
}

// CurriculumTopics is the per-grade topic table the curriculum view offers for
// one-click generation.
var CurriculumTopics = map[string][]CurriculumTopic{
	"K": {
		{Subject: "Math", Topic: "Counting to 20"},
		{Subject: "Reading", Topic: "Letter Sounds and Phonics"},
		{Subject: "Science", Topic: "The Five Senses"},
	},
	"1": {
		{Subject: "Math", Topic: "Basic Addition and Subtraction"},
		{Subject: "Reading", Topic: "Sight Words and Sentence Building"},
		{Subject: "Science", Topic: "Animal Habitats"},
	},
	"2": {
		{Subject: "Math", Topic: "Place Value and Regrouping"},
		{Subject: "Language arts", Topic: "Parts of Speech: Nouns and Verbs"},
		{Subject: "Social studies", Topic: "Community Helpers"},
	},
	"3": {
		{Subject: "Math", Topic: "Introduction to Fractions"},
		{Subject: "Science", Topic: "The Water Cycle"},
		{Subject: "Social studies", Topic: "Ancient Civilizations: Egypt"},
	},
	"4": {
		{Subject: "Math", Topic: "Long Division"},
		{Subject: "Science", Topic: "Electricity and Circuits"},
		{Subject: "Language arts", Topic: "Writing Persuasive Essays"},
	},
	"5": {
		{Subject: "Math", Topic: "Decimals and Percentages"},
		{Subject: "Science", Topic: "The Solar System"},
		{Subject: "Social studies", Topic: "The American Revolution"},
	},
	"6": {
		{Subject: "Math", Topic: "Introduction to Ratios"},
		{Subject: "Science", Topic: "Cell Biology"},
		{Subject: "Language arts", Topic: "Analyzing Mythology"},
	},
	"7": {
		{Subject: "Math", Topic: "Pre-Algebra: Variables"},
		{Subject: "Science", Topic: "Plate Tectonics"},
		{Subject: "Social studies", Topic: "The Renaissance"},
	},
	"8": {
		{Subject: "Math", Topic: "Linear Equations"},
		{Subject: "Science", Topic: "Chemical Reactions"},
		{Subject: "Language arts", Topic: "Shakespearean Drama"},
	},
	"9": {
		{Subject: "Math", Topic: "Algebra I: Quadratics"},
		{Subject: "Science", Topic: "Environmental Science"},
		{Subject: "Social studies", Topic: "World War I"},
	},
	"10": {
		{Subject: "Math", Topic: "Geometry: Proofs"},
		{Subject: "Science", Topic: "Genetics and DNA"},
		{Subject: "Language arts", Topic: "Modern Literature Analysis"},
	},
	"11": {
		{Subject: "Math", Topic: "Algebra II: Trigonometry"},
		{Subject: "Science", Topic: "Physics: Motion and Force"},
		{Subject: "Social studies", Topic: "The Cold War"},
	},
	"12": {
		{Subject: "Math", Topic: "Calculus: Derivatives"},
		{Subject: "Science", Topic: "Organic Chemistry"},
		{Subject: "Language arts", Topic: "College Research Writing"},
	},
}
