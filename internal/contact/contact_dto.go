package contact

type ContactRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Message      string `json:"message"`
	Locale       string `json:"locale"`
	CaptchaToken string `json:"captchaToken"`
}
