// Package locale holds the per-language content tables for the bot: menu
// button labels, UI texts, and assistant instruction strings.
//
// Labels are matched against incoming text by exact string equality. The
// {language, action} -> label table is built once at package init and a
// reverse index label -> (language, action) is derived from it, so button
// lookup never depends on the user's current language.
package locale

import (
	"fmt"

	"golang.org/x/text/language"
)

// Language is a supported locale code.
type Language string

const (
	Ukrainian Language = "ua"
	Russian   Language = "ru"
	English   Language = "en"
	French    Language = "fr"
	Dutch     Language = "nl"
)

// All lists the supported languages in menu order.
var All = []Language{Ukrainian, Russian, English, French, Dutch}

// Default is the language assigned to sessions on first contact.
const Default = Ukrainian

// Action is a menu button action.
type Action string

const (
	ActionWhat         Action = "what"
	ActionPrice        Action = "price"
	ActionPayback      Action = "payback"
	ActionTerms        Action = "terms"
	ActionContacts     Action = "contacts"
	ActionLead         Action = "lead"
	ActionLanguage     Action = "language"
	ActionPresentation Action = "presentation"
)

// menuOrder defines the reply-keyboard layout, one row per slice.
var menuOrder = [][]Action{
	{ActionWhat, ActionPrice},
	{ActionPayback, ActionTerms},
	{ActionContacts, ActionLead},
	{ActionPresentation, ActionLanguage},
}

var labels = map[Language]map[Action]string{
	Ukrainian: {
		ActionWhat:         "☕ Що таке Maison de Café",
		ActionPrice:        "💰 Вартість відкриття",
		ActionPayback:      "📈 Окупність і прибуток",
		ActionTerms:        "🤝 Умови співпраці",
		ActionContacts:     "📞 Контакти",
		ActionLead:         "📝 Залишити заявку",
		ActionLanguage:     "🌍 Обрати мову",
		ActionPresentation: "📄 Презентація",
	},
	Russian: {
		ActionWhat:         "☕ Что такое Maison de Café",
		ActionPrice:        "💰 Стоимость открытия",
		ActionPayback:      "📈 Окупаемость и прибыль",
		ActionTerms:        "🤝 Условия сотрудничества",
		ActionContacts:     "📞 Контакты",
		ActionLead:         "📝 Оставить заявку",
		ActionLanguage:     "🌍 Выбрать язык",
		ActionPresentation: "📄 Презентация",
	},
	English: {
		ActionWhat:         "☕ What is Maison de Café",
		ActionPrice:        "💰 Opening cost",
		ActionPayback:      "📈 Payback & profit",
		ActionTerms:        "🤝 Partnership terms",
		ActionContacts:     "📞 Contacts",
		ActionLead:         "📝 Leave a request",
		ActionLanguage:     "🌍 Choose language",
		ActionPresentation: "📄 Presentation",
	},
	French: {
		ActionWhat:         "☕ Qu'est-ce que Maison de Café",
		ActionPrice:        "💰 Coût d'ouverture",
		ActionPayback:      "📈 Rentabilité et profit",
		ActionTerms:        "🤝 Conditions de partenariat",
		ActionContacts:     "📞 Contacts",
		ActionLead:         "📝 Laisser une demande",
		ActionLanguage:     "🌍 Choisir la langue",
		ActionPresentation: "📄 Présentation",
	},
	Dutch: {
		ActionWhat:         "☕ Wat is Maison de Café",
		ActionPrice:        "💰 Opstartkosten",
		ActionPayback:      "📈 Terugverdientijd & winst",
		ActionTerms:        "🤝 Samenwerkingsvoorwaarden",
		ActionContacts:     "📞 Contacten",
		ActionLead:         "📝 Aanvraag achterlaten",
		ActionLanguage:     "🌍 Taal kiezen",
		ActionPresentation: "📄 Presentatie",
	},
}

// langNames are the literal labels shown in the language picker. Picking one
// of these switches the session language regardless of the current one.
var langNames = map[string]Language{
	"🇺🇦 Українська": Ukrainian,
	"🇷🇺 Русский":    Russian,
	"🇬🇧 English":    English,
	"🇫🇷 Français":   French,
	"🇳🇱 Nederlands": Dutch,
}

type labelKey struct {
	lang   Language
	action Action
}

var reverseIndex map[string]labelKey

func init() {
	reverseIndex = make(map[string]labelKey)

	for lang, table := range labels {
		seen := make(map[string]Action, len(table))

		for action, label := range table {
			if prev, ok := seen[label]; ok {
				panic(fmt.Sprintf("locale: duplicate label %q in %s (%s and %s)", label, lang, prev, action))
			}

			seen[label] = action
			reverseIndex[label] = labelKey{lang: lang, action: action}
		}
	}
}

// Valid reports whether code names a supported language.
func Valid(code string) bool {
	for _, l := range All {
		if l == Language(code) {
			return true
		}
	}

	return false
}

// Label returns the button label for the given language and action.
func Label(lang Language, action Action) string {
	return labels[norm(lang)][action]
}

// MenuRows returns the reply-keyboard labels for a language, row by row.
func MenuRows(lang Language) [][]string {
	lang = norm(lang)
	rows := make([][]string, 0, len(menuOrder))

	for _, row := range menuOrder {
		r := make([]string, 0, len(row))
		for _, action := range row {
			r = append(r, labels[lang][action])
		}

		rows = append(rows, r)
	}

	return rows
}

// MatchButton resolves raw text to a menu action by exact label equality.
// The returned language is the language the pressed button belongs to, which
// may differ from the sender's session language.
func MatchButton(text string) (Action, Language, bool) {
	key, ok := reverseIndex[text]
	if !ok {
		return "", "", false
	}

	return key.action, key.lang, true
}

// MatchLanguageName resolves one of the fixed language-picker labels.
func MatchLanguageName(text string) (Language, bool) {
	lang, ok := langNames[text]
	return lang, ok
}

// LanguageNames returns the picker labels in menu order.
func LanguageNames() []string {
	names := make([]string, 0, len(All))

	for _, lang := range All {
		for name, l := range langNames {
			if l == lang {
				names = append(names, name)
				break
			}
		}
	}

	return names
}

// DisplayName returns the picker label for a language.
func DisplayName(lang Language) string {
	for name, l := range langNames {
		if l == lang {
			return name
		}
	}

	return string(lang)
}

// Tag maps a Language to the x/text tag used for number formatting.
func Tag(lang Language) language.Tag {
	switch norm(lang) {
	case Russian:
		return language.Russian
	case English:
		return language.English
	case French:
		return language.French
	case Dutch:
		return language.Dutch
	default:
		return language.Ukrainian
	}
}

func norm(lang Language) Language {
	if _, ok := labels[lang]; !ok {
		return Default
	}

	return lang
}
