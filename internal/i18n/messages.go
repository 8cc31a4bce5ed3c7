package i18n

var messages = map[string]map[string]string{
	"en": {
		"contact.name.required":   "Name is required",
		"contact.email.invalid":   "Email address is not valid",
		"contact.message.length":  "Message must be between 1 and 1000 characters",
		"address.required":        "Address is required",
		"address.implausible":     "This does not look like a real address",
		"account.id.invalid":      "User identifier is not valid",
		"account.name.required":   "Display name is required",
		"checkout.captcha.failed": "Captcha verification failed",
	},
	"uk": {
		"contact.name.required":   "Вкажіть ім'я",
		"contact.email.invalid":   "Недійсна адреса електронної пошти",
		"contact.message.length":  "Повідомлення має містити від 1 до 1000 символів",
		"address.required":        "Вкажіть адресу",
		"address.implausible":     "Це не схоже на справжню адресу",
		"account.id.invalid":      "Недійсний ідентифікатор користувача",
		"account.name.required":   "Вкажіть ім'я для відображення",
		"checkout.captcha.failed": "Не вдалося пройти перевірку captcha",
	},
}
