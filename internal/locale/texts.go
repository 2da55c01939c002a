package locale

import "strings"

// TextKey names a UI string in the Texts table.
type TextKey string

const (
	TextWelcome       TextKey = "welcome"
	TextChooseLang    TextKey = "choose_lang"
	TextLangSet       TextKey = "lang_set"
	TextContacts      TextKey = "contacts"
	TextLeadStart     TextKey = "lead_start"
	TextLeadPhone     TextKey = "lead_phone"
	TextLeadEmail     TextKey = "lead_email"
	TextLeadMessage   TextKey = "lead_msg"
	TextLeadDone      TextKey = "lead_done"
	TextLeadCancelled TextKey = "lead_cancelled"
	TextLeadBadPhone  TextKey = "lead_bad_phone"
	TextLeadBadEmail  TextKey = "lead_bad_email"
	TextSpamStop      TextKey = "spam_stop"
	TextKBMissing     TextKey = "kb_missing"
	TextVoiceFail     TextKey = "voice_fail"
	TextNoFiles       TextKey = "no_files"
	TextGenericError  TextKey = "generic_error"
	TextCalcClarify   TextKey = "calc_clarify"
	TextThreadReset   TextKey = "thread_reset"
	TextPresentation  TextKey = "presentation_caption"

	// TextPresentationMissing is shown when no presentation file is
	// configured.
	TextPresentationMissing TextKey = "presentation_missing"
)

var texts = map[Language]map[TextKey]string{
	Ukrainian: {
		TextWelcome:       "Вітаю! Я консультант Maison de Café. Оберіть пункт меню або напишіть своє запитання.",
		TextChooseLang:    "Оберіть мову:",
		TextLangSet:       "Мову змінено: %s",
		TextContacts:      "📞 Контакти Maison de Café:\nTelegram: @maisondecafe\nEmail: hello@maisondecafe.example\nТелефон: +380 44 000 00 00",
		TextLeadStart:     "Як вас звати?",
		TextLeadPhone:     "Залиште, будь ласка, номер телефону:",
		TextLeadEmail:     "Вкажіть ваш email:",
		TextLeadMessage:   "Коротко опишіть ваше питання чи побажання:",
		TextLeadDone:      "Дякуємо! Вашу заявку надіслано. %s",
		TextLeadCancelled: "Заявку скасовано.",
		TextLeadBadPhone:  "Схоже, це не номер телефону. Вкажіть номер із мінімум 7 цифрами:",
		TextLeadBadEmail:  "Схоже, це не email. Вкажіть адресу у форматі name@domain.com:",
		TextSpamStop:      "Будь ласка, поставте конкретне запитання про Maison de Café.",
		TextKBMissing:     "На жаль, я не знайшов відповіді в базі знань. Уточніть запитання або залиште заявку.",
		TextVoiceFail:     "Не вдалося розпізнати голосове повідомлення. Напишіть, будь ласка, текстом.",
		TextNoFiles:       "Я працюю лише з текстом і голосовими повідомленнями.",
		TextGenericError:  "Сталася помилка. Спробуйте ще раз або оберіть пункт меню.",
		TextCalcClarify:   "Скільки чашок на день плануєте продавати? Напишіть число від 1 до 200.",
		TextThreadReset:   "✅ Діалог скинуто.",
		TextPresentation:  "Презентація Maison de Café",

		TextPresentationMissing: "Презентація тимчасово недоступна. Залиште заявку, і ми надішлемо її вам особисто.",
	},
	Russian: {
		TextWelcome:       "Здравствуйте! Я консультант Maison de Café. Выберите пункт меню или напишите свой вопрос.",
		TextChooseLang:    "Выберите язык:",
		TextLangSet:       "Язык изменён: %s",
		TextContacts:      "📞 Контакты Maison de Café:\nTelegram: @maisondecafe\nEmail: hello@maisondecafe.example\nТелефон: +380 44 000 00 00",
		TextLeadStart:     "Как вас зовут?",
		TextLeadPhone:     "Оставьте, пожалуйста, номер телефона:",
		TextLeadEmail:     "Укажите ваш email:",
		TextLeadMessage:   "Коротко опишите ваш вопрос или пожелание:",
		TextLeadDone:      "Спасибо! Ваша заявка отправлена. %s",
		TextLeadCancelled: "Заявка отменена.",
		TextLeadBadPhone:  "Похоже, это не номер телефона. Укажите номер минимум из 7 цифр:",
		TextLeadBadEmail:  "Похоже, это не email. Укажите адрес в формате name@domain.com:",
		TextSpamStop:      "Пожалуйста, задайте конкретный вопрос о Maison de Café.",
		TextKBMissing:     "К сожалению, я не нашёл ответа в базе знаний. Уточните вопрос или оставьте заявку.",
		TextVoiceFail:     "Не удалось распознать голосовое сообщение. Напишите, пожалуйста, текстом.",
		TextNoFiles:       "Я работаю только с текстом и голосовыми сообщениями.",
		TextGenericError:  "Произошла ошибка. Попробуйте ещё раз или выберите пункт меню.",
		TextCalcClarify:   "Сколько чашек в день планируете продавать? Напишите число от 1 до 200.",
		TextThreadReset:   "✅ Диалог сброшен.",
		TextPresentation:  "Презентация Maison de Café",

		TextPresentationMissing: "Презентация временно недоступна. Оставьте заявку, и мы пришлём её вам лично.",
	},
	English: {
		TextWelcome:       "Hello! I am the Maison de Café consultant. Pick a menu item or type your question.",
		TextChooseLang:    "Choose a language:",
		TextLangSet:       "Language set: %s",
		TextContacts:      "📞 Maison de Café contacts:\nTelegram: @maisondecafe\nEmail: hello@maisondecafe.example\nPhone: +380 44 000 00 00",
		TextLeadStart:     "What is your name?",
		TextLeadPhone:     "Please leave your phone number:",
		TextLeadEmail:     "Your email, please:",
		TextLeadMessage:   "Briefly describe your question or request:",
		TextLeadDone:      "Thank you! Your request has been sent. %s",
		TextLeadCancelled: "Request cancelled.",
		TextLeadBadPhone:  "That does not look like a phone number. Please enter at least 7 digits:",
		TextLeadBadEmail:  "That does not look like an email. Please use name@domain.com format:",
		TextSpamStop:      "Please ask a specific question about Maison de Café.",
		TextKBMissing:     "Sorry, I could not find that in the knowledge base. Please clarify or leave a request.",
		TextVoiceFail:     "Could not understand the voice message. Please type your question.",
		TextNoFiles:       "I only work with text and voice messages.",
		TextGenericError:  "Something went wrong. Please try again or pick a menu item.",
		TextCalcClarify:   "How many cups per day do you plan to sell? Send a number from 1 to 200.",
		TextThreadReset:   "✅ Conversation reset.",
		TextPresentation:  "Maison de Café presentation",

		TextPresentationMissing: "The presentation is temporarily unavailable. Leave a request and we will send it to you directly.",
	},
	French: {
		TextWelcome:       "Bonjour ! Je suis le consultant Maison de Café. Choisissez un élément du menu ou posez votre question.",
		TextChooseLang:    "Choisissez une langue :",
		TextLangSet:       "Langue définie : %s",
		TextContacts:      "📞 Contacts Maison de Café :\nTelegram : @maisondecafe\nEmail : hello@maisondecafe.example\nTéléphone : +380 44 000 00 00",
		TextLeadStart:     "Quel est votre nom ?",
		TextLeadPhone:     "Laissez votre numéro de téléphone :",
		TextLeadEmail:     "Votre email, s'il vous plaît :",
		TextLeadMessage:   "Décrivez brièvement votre question ou demande :",
		TextLeadDone:      "Merci ! Votre demande a été envoyée. %s",
		TextLeadCancelled: "Demande annulée.",
		TextLeadBadPhone:  "Cela ne ressemble pas à un numéro de téléphone. Entrez au moins 7 chiffres :",
		TextLeadBadEmail:  "Cela ne ressemble pas à un email. Utilisez le format name@domain.com :",
		TextSpamStop:      "Veuillez poser une question précise sur Maison de Café.",
		TextKBMissing:     "Désolé, je n'ai pas trouvé cela dans la base de connaissances. Précisez ou laissez une demande.",
		TextVoiceFail:     "Message vocal incompréhensible. Veuillez écrire votre question.",
		TextNoFiles:       "Je ne traite que le texte et les messages vocaux.",
		TextGenericError:  "Une erreur s'est produite. Réessayez ou choisissez un élément du menu.",
		TextCalcClarify:   "Combien de tasses par jour comptez-vous vendre ? Envoyez un nombre de 1 à 200.",
		TextThreadReset:   "✅ Conversation réinitialisée.",
		TextPresentation:  "Présentation Maison de Café",

		TextPresentationMissing: "La présentation est temporairement indisponible. Laissez une demande et nous vous l'enverrons directement.",
	},
	Dutch: {
		TextWelcome:       "Hallo! Ik ben de Maison de Café-consultant. Kies een menu-item of typ uw vraag.",
		TextChooseLang:    "Kies een taal:",
		TextLangSet:       "Taal ingesteld: %s",
		TextContacts:      "📞 Maison de Café contacten:\nTelegram: @maisondecafe\nEmail: hello@maisondecafe.example\nTelefoon: +380 44 000 00 00",
		TextLeadStart:     "Wat is uw naam?",
		TextLeadPhone:     "Laat uw telefoonnummer achter:",
		TextLeadEmail:     "Uw e-mailadres, alstublieft:",
		TextLeadMessage:   "Beschrijf kort uw vraag of verzoek:",
		TextLeadDone:      "Bedankt! Uw aanvraag is verzonden. %s",
		TextLeadCancelled: "Aanvraag geannuleerd.",
		TextLeadBadPhone:  "Dat lijkt geen telefoonnummer. Voer minimaal 7 cijfers in:",
		TextLeadBadEmail:  "Dat lijkt geen e-mailadres. Gebruik het formaat name@domain.com:",
		TextSpamStop:      "Stel alstublieft een concrete vraag over Maison de Café.",
		TextKBMissing:     "Helaas kon ik dat niet vinden in de kennisbank. Verduidelijk uw vraag of laat een aanvraag achter.",
		TextVoiceFail:     "Spraakbericht niet verstaan. Typ alstublieft uw vraag.",
		TextNoFiles:       "Ik werk alleen met tekst- en spraakberichten.",
		TextGenericError:  "Er ging iets mis. Probeer opnieuw of kies een menu-item.",
		TextCalcClarify:   "Hoeveel koppen per dag wilt u verkopen? Stuur een getal van 1 tot 200.",
		TextThreadReset:   "✅ Gesprek gereset.",
		TextPresentation:  "Maison de Café presentatie",

		TextPresentationMissing: "De presentatie is tijdelijk niet beschikbaar. Laat een aanvraag achter en we sturen deze u rechtstreeks toe.",
	},
}

// Text returns the UI string for a language, falling back to the default
// language when the key is missing.
func Text(lang Language, key TextKey) string {
	if s, ok := texts[norm(lang)][key]; ok {
		return s
	}

	return texts[Default][key]
}

// cancelWords reset an in-progress lead form in any supported language.
var cancelWords = map[string]struct{}{
	"cancel":    {},
	"скасувати": {},
	"отмена":    {},
	"annuler":   {},
	"annuleren": {},
}

// IsCancelWord reports whether text is a lead-form cancellation keyword.
func IsCancelWord(text string) bool {
	_, ok := cancelWords[strings.ToLower(strings.TrimSpace(text))]
	return ok
}
