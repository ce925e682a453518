// Package content хранит дневной банк учебных материалов: вопросы по
// предметам, пробный тест, дайджест общих знаний и объявления.
package content

import "github.com/magabrotheeeer/examprep-backend/internal/models"

// Слаги предметов, доступных в разделе вопросов и ответов.
const (
	SubjectGeneralStudies = "general-studies"
	SubjectArithmetic     = "arithmetic"
	SubjectReasoning      = "reasoning"
	SubjectEnglish        = "english"
)

var subjectTitles = map[string]string{
	SubjectGeneralStudies: "General Studies",
	SubjectArithmetic:     "Arithmetic",
	SubjectReasoning:      "Reasoning",
	SubjectEnglish:        "English",
}

// SubjectTitle возвращает человекочитаемое название предмета по слагу.
func SubjectTitle(slug string) (string, bool) {
	title, ok := subjectTitles[slug]
	return title, ok
}

// Subjects возвращает список слагов всех предметов.
func Subjects() []string {
	return []string{SubjectGeneralStudies, SubjectArithmetic, SubjectReasoning, SubjectEnglish}
}

var questionsBySubject = map[string][]models.Question{
	SubjectGeneralStudies: {
		{
			ID:       "gs-1",
			Question: "Who was the first President of India?",
			Options: map[string]string{
				"a": "Jawaharlal Nehru",
				"b": "Dr. Rajendra Prasad",
				"c": "Sardar Vallabhbhai Patel",
				"d": "Dr. B.R. Ambedkar",
			},
			CorrectAnswer: "b",
			Explanation:   "Dr. Rajendra Prasad served as the first President of India from 1950 to 1962.",
			Subject:       SubjectGeneralStudies,
			Difficulty:    "easy",
		},
		{
			ID:       "gs-2",
			Question: "The Tropic of Cancer does NOT pass through which state?",
			Options: map[string]string{
				"a": "Gujarat",
				"b": "Rajasthan",
				"c": "Odisha",
				"d": "Tripura",
			},
			CorrectAnswer: "c",
			Explanation:   "The Tropic of Cancer passes through eight Indian states; Odisha is not one of them.",
			Subject:       SubjectGeneralStudies,
			Difficulty:    "medium",
		},
		{
			ID:       "gs-3",
			Question: "Which article of the Constitution deals with the Right to Equality?",
			Options: map[string]string{
				"a": "Article 14",
				"b": "Article 19",
				"c": "Article 21",
				"d": "Article 32",
			},
			CorrectAnswer: "a",
			Explanation:   "Article 14 guarantees equality before law and equal protection of the laws.",
			Subject:       SubjectGeneralStudies,
			Difficulty:    "medium",
		},
		{
			ID:       "gs-4",
			Question: "The Battle of Plassey was fought in which year?",
			Options: map[string]string{
				"a": "1757",
				"b": "1764",
				"c": "1857",
				"d": "1775",
			},
			CorrectAnswer: "a",
			Explanation:   "The Battle of Plassey was fought in 1757 between the British East India Company and the Nawab of Bengal.",
			Subject:       SubjectGeneralStudies,
			Difficulty:    "easy",
		},
	},
	SubjectArithmetic: {
		{
			ID:       "ar-1",
			Question: "A train 150 m long crosses a pole in 15 seconds. What is its speed in km/h?",
			Options: map[string]string{
				"a": "30",
				"b": "36",
				"c": "40",
				"d": "45",
			},
			CorrectAnswer: "b",
			Explanation:   "Speed = 150/15 = 10 m/s = 10 x 18/5 = 36 km/h.",
			Subject:       SubjectArithmetic,
			Difficulty:    "medium",
		},
		{
			ID:       "ar-2",
			Question: "What is 25% of 480?",
			Options: map[string]string{
				"a": "100",
				"b": "110",
				"c": "120",
				"d": "130",
			},
			CorrectAnswer: "c",
			Explanation:   "25% of 480 = 480/4 = 120.",
			Subject:       SubjectArithmetic,
			Difficulty:    "easy",
		},
		{
			ID:       "ar-3",
			Question: "The simple interest on Rs. 5000 at 8% per annum for 3 years is:",
			Options: map[string]string{
				"a": "Rs. 1000",
				"b": "Rs. 1200",
				"c": "Rs. 1400",
				"d": "Rs. 1600",
			},
			CorrectAnswer: "b",
			Explanation:   "SI = (5000 x 8 x 3) / 100 = Rs. 1200.",
			Subject:       SubjectArithmetic,
			Difficulty:    "easy",
		},
	},
	SubjectReasoning: {
		{
			ID:       "re-1",
			Question: "Find the next number in the series: 2, 6, 12, 20, 30, ?",
			Options: map[string]string{
				"a": "40",
				"b": "42",
				"c": "44",
				"d": "46",
			},
			CorrectAnswer: "b",
			Explanation:   "Differences are 4, 6, 8, 10, so the next difference is 12 and 30 + 12 = 42.",
			Subject:       SubjectReasoning,
			Difficulty:    "medium",
		},
		{
			ID:       "re-2",
			Question: "If CAT is coded as 3120, how is DOG coded?",
			Options: map[string]string{
				"a": "4157",
				"b": "4156",
				"c": "3157",
				"d": "4167",
			},
			CorrectAnswer: "a",
			Explanation:   "Letters map to their alphabet positions: D=4, O=15, G=7.",
			Subject:       SubjectReasoning,
			Difficulty:    "medium",
		},
		{
			ID:       "re-3",
			Question: "Pointing to a photograph, Ram said, 'She is the daughter of my grandfather's only son.' How is the girl related to Ram?",
			Options: map[string]string{
				"a": "Cousin",
				"b": "Mother",
				"c": "Sister",
				"d": "Aunt",
			},
			CorrectAnswer: "c",
			Explanation:   "Grandfather's only son is Ram's father, so his daughter is Ram's sister.",
			Subject:       SubjectReasoning,
			Difficulty:    "easy",
		},
	},
	SubjectEnglish: {
		{
			ID:       "en-1",
			Question: "Choose the synonym of 'abundant':",
			Options: map[string]string{
				"a": "Scarce",
				"b": "Plentiful",
				"c": "Rare",
				"d": "Meagre",
			},
			CorrectAnswer: "b",
			Explanation:   "'Abundant' means existing in large quantities; 'plentiful' is the closest synonym.",
			Subject:       SubjectEnglish,
			Difficulty:    "easy",
		},
		{
			ID:       "en-2",
			Question: "Identify the correctly spelt word:",
			Options: map[string]string{
				"a": "Occassion",
				"b": "Ocassion",
				"c": "Occasion",
				"d": "Occasionn",
			},
			CorrectAnswer: "c",
			Explanation:   "The correct spelling is 'occasion', with double c and single s.",
			Subject:       SubjectEnglish,
			Difficulty:    "easy",
		},
		{
			ID:       "en-3",
			Question: "Fill in the blank: Neither of the boys ___ present.",
			Options: map[string]string{
				"a": "were",
				"b": "was",
				"c": "are",
				"d": "have been",
			},
			CorrectAnswer: "b",
			Explanation:   "'Neither' takes a singular verb, so 'was' is correct.",
			Subject:       SubjectEnglish,
			Difficulty:    "medium",
		},
	},
}

// QuestionsForSubject возвращает дневной набор вопросов по предмету.
func QuestionsForSubject(slug string) ([]models.Question, bool) {
	qs, ok := questionsBySubject[slug]
	return qs, ok
}

var testQuestions = []models.Question{
	questionsBySubject[SubjectGeneralStudies][0],
	questionsBySubject[SubjectGeneralStudies][1],
	questionsBySubject[SubjectArithmetic][0],
	questionsBySubject[SubjectArithmetic][1],
	questionsBySubject[SubjectReasoning][0],
	questionsBySubject[SubjectEnglish][0],
}

// TestQuestions возвращает вопросы дневного пробного теста.
func TestQuestions() []models.Question {
	return testQuestions
}

var gkPoints = []models.GKPoint{
	{ID: "gk-1", Title: "Chandrayaan-3", Body: "India became the first country to land a spacecraft near the lunar south pole with Chandrayaan-3.", Category: "science"},
	{ID: "gk-2", Title: "G20 Presidency", Body: "India hosted the G20 summit in New Delhi under the theme 'Vasudhaiva Kutumbakam'.", Category: "polity"},
	{ID: "gk-3", Title: "Kaveri River", Body: "The Kaveri river rises at Talakaveri in the Western Ghats of Karnataka.", Category: "geography"},
	{ID: "gk-4", Title: "RBI Repo Rate", Body: "The repo rate is the rate at which the RBI lends short-term funds to commercial banks.", Category: "economy"},
}

// GKPoints возвращает ключевые пункты дневного дайджеста общих знаний.
func GKPoints() []models.GKPoint {
	return gkPoints
}

var gkMCQs = []models.Question{
	{
		ID:       "gkq-1",
		Question: "Which mission made India the first country to land near the lunar south pole?",
		Options: map[string]string{
			"a": "Chandrayaan-2",
			"b": "Chandrayaan-3",
			"c": "Mangalyaan",
			"d": "Gaganyaan",
		},
		CorrectAnswer: "b",
		Explanation:   "Chandrayaan-3 soft-landed near the lunar south pole in August 2023.",
		Subject:       "gk",
		Difficulty:    "easy",
	},
	{
		ID:       "gkq-2",
		Question: "The headquarters of the Reserve Bank of India is located in:",
		Options: map[string]string{
			"a": "New Delhi",
			"b": "Kolkata",
			"c": "Mumbai",
			"d": "Chennai",
		},
		CorrectAnswer: "c",
		Explanation:   "The RBI headquarters moved from Kolkata to Mumbai in 1937.",
		Subject:       "gk",
		Difficulty:    "easy",
	},
	{
		ID:       "gkq-3",
		Question: "Talakaveri, the source of the Kaveri river, lies in which state?",
		Options: map[string]string{
			"a": "Kerala",
			"b": "Tamil Nadu",
			"c": "Karnataka",
			"d": "Andhra Pradesh",
		},
		CorrectAnswer: "c",
		Explanation:   "Talakaveri is in the Kodagu district of Karnataka.",
		Subject:       "gk",
		Difficulty:    "medium",
	},
}

// GKMCQs возвращает тестовые вопросы дневного дайджеста.
func GKMCQs() []models.Question {
	return gkMCQs
}

var quickFacts = []string{
	"The Indian Constitution originally had 395 articles and 8 schedules.",
	"Kanchenjunga is the highest mountain peak located entirely in India.",
	"The first Indian satellite, Aryabhata, was launched in 1975.",
	"Sundarbans is the largest mangrove forest in the world.",
	"The Rajya Sabha is a permanent house and cannot be dissolved.",
	"The national aquatic animal of India is the Ganges river dolphin.",
}

// QuickFacts возвращает короткие факты дневного дайджеста.
func QuickFacts() []string {
	return quickFacts
}

var notices = []models.Notice{
	{ID: "n-1", Type: "exam", Title: "SSC CGL Tier-1 schedule released", Body: "Tier-1 examination will be held from 9 to 26 September. Download admit cards a week before your slot.", Date: "2026-08-20", IsActive: true},
	{ID: "n-2", Type: "result", Title: "Railway NTPC result declared", Body: "Results for the NTPC CBT-2 stage are available on the regional railway websites.", Date: "2026-08-18", IsActive: true},
	{ID: "n-3", Type: "urgent", Title: "Application window closing", Body: "The last date to apply for the State Police Constable recruitment is 5 September.", Date: "2026-08-25", IsActive: true},
	{ID: "n-4", Type: "general", Title: "New mock test series", Body: "A fresh full-length mock test series for banking exams starts next week.", Date: "2026-08-10", IsActive: false},
}

// Notices возвращает все объявления, включая неактивные.
func Notices() []models.Notice {
	return notices
}
