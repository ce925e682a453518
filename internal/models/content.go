package models

// Question представляет один вопрос банка заданий с вариантами ответа.
type Question struct {
	ID            string            `json:"id"`
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
	Explanation   string            `json:"explanation"`
	Subject       string            `json:"subject"`
	Difficulty    string            `json:"difficulty"`
}

// QNASet — дневная подборка вопросов и ответов по одному предмету.
type QNASet struct {
	Date      string     `json:"date"`
	Subject   string     `json:"subject"`
	Total     int        `json:"total"`
	Locked    int        `json:"locked"`
	Questions []Question `json:"questions"`
}

// TestPaper — пробный экзаменационный тест на время.
type TestPaper struct {
	Date             string     `json:"date"`
	Title            string     `json:"title"`
	TimeLimitMinutes int        `json:"time_limit_minutes"`
	Total            int        `json:"total"`
	Locked           int        `json:"locked"`
	Questions        []Question `json:"questions"`
}

// GKPoint — один пункт дайджеста общих знаний.
type GKPoint struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

// GKDigest — дневной дайджест текущих событий: пункты, вопросы и факты.
type GKDigest struct {
	Date       string     `json:"date"`
	Points     []GKPoint  `json:"gk_points"`
	MCQs       []Question `json:"mcqs"`
	QuickFacts []string   `json:"quick_facts"`
	Locked     int        `json:"locked"`
}

// Notice — запись доски объявлений (экзамены, результаты, срочные новости).
// Type принимает значения exam, result, urgent или general.
type Notice struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Date     string `json:"date"`
	IsActive bool   `json:"is_active"`
}
