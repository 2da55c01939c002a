package verifier

import (
	"strings"

	"github.com/maisondecafe/kiosk-bot/internal/locale"
)

// Intent is the coarse topic guess used to pick a gold answer when the
// verifier cannot repair a draft.
type Intent string

const (
	IntentPrice   Intent = "price"
	IntentPayback Intent = "payback"
	IntentTerms   Intent = "terms"
	IntentWhat    Intent = "what"
	IntentOther   Intent = "other"
)

var intentCues = []struct {
	intent Intent
	cues   []string
}{
	{IntentPrice, []string{"price", "cost", "вартіст", "кошту", "стоимост", "стоит", "coût", "prix", "kosten", "prijs"}},
	{IntentPayback, []string{"payback", "profit", "earn", "окупн", "окупа", "приб", "зароб", "зараб", "rentab", "winst", "terugverdien"}},
	{IntentTerms, []string{"terms", "franchise", "умови", "услови", "співпрац", "сотрудн", "conditions", "voorwaarden"}},
	{IntentWhat, []string{"what is", "що таке", "что такое", "qu'est", "wat is", "maison"}},
}

// GuessIntent keyword-matches the user's original question.
func GuessIntent(question string) Intent {
	lower := strings.ToLower(question)

	for _, entry := range intentCues {
		for _, cue := range entry.cues {
			if strings.Contains(lower, cue) {
				return entry.intent
			}
		}
	}

	return IntentOther
}

// Curated safe answers, one per intent per language. They contain no figures
// at all, so they always pass the policy.
var goldAnswers = map[Intent]map[locale.Language]string{
	IntentPrice: {
		locale.Ukrainian: "Вартість відкриття залежить від формату точки. Базовий старт включає обладнання, навчання і перший запас. Залиште заявку — надішлемо точний розрахунок.",
		locale.Russian:   "Стоимость открытия зависит от формата точки. Базовый старт включает оборудование, обучение и первый запас. Оставьте заявку — пришлём точный расчёт.",
		locale.English:   "The opening cost depends on the kiosk format. The base start includes equipment, training and the first stock. Leave a request and we will send the exact breakdown.",
		locale.French:    "Le coût d'ouverture dépend du format du kiosque. Le démarrage de base inclut l'équipement, la formation et le premier stock. Laissez une demande pour le détail exact.",
		locale.Dutch:     "De opstartkosten hangen af van het kioskformaat. De basisstart omvat apparatuur, training en de eerste voorraad. Laat een aanvraag achter voor de exacte berekening.",
	},
	IntentPayback: {
		locale.Ukrainian: "Прибуток залежить від кількості чашок на день. Напишіть, скільки чашок плануєте продавати, і я порахую валову маржу та окупність.",
		locale.Russian:   "Прибыль зависит от количества чашек в день. Напишите, сколько чашек планируете продавать, и я посчитаю валовую маржу и окупаемость.",
		locale.English:   "Profit depends on cups sold per day. Tell me how many cups you plan to sell and I will compute the gross margin and payback.",
		locale.French:    "Le profit dépend du nombre de tasses par jour. Dites-moi combien de tasses vous comptez vendre et je calcule la marge brute et le retour.",
		locale.Dutch:     "De winst hangt af van het aantal koppen per dag. Vertel hoeveel koppen u wilt verkopen en ik bereken de brutomarge en terugverdientijd.",
	},
	IntentTerms: {
		locale.Ukrainian: "Співпраця включає підтримку запуску, стандарти якості та супровід. Деталі умов надішлемо після заявки.",
		locale.Russian:   "Сотрудничество включает поддержку запуска, стандарты качества и сопровождение. Детали условий пришлём после заявки.",
		locale.English:   "Partnership includes launch support, quality standards and ongoing service. We will share the detailed terms after your request.",
		locale.French:    "Le partenariat inclut le support au lancement, les standards de qualité et l'accompagnement. Les conditions détaillées suivent votre demande.",
		locale.Dutch:     "Samenwerking omvat opstartondersteuning, kwaliteitsstandaarden en begeleiding. De gedetailleerde voorwaarden volgen na uw aanvraag.",
	},
	IntentWhat: {
		locale.Ukrainian: "Maison de Café — це формат кавового кіоску під ключ: обладнання, рецептури, навчання та супровід партнера.",
		locale.Russian:   "Maison de Café — это формат кофейного киоска под ключ: оборудование, рецептуры, обучение и сопровождение партнёра.",
		locale.English:   "Maison de Café is a turnkey coffee-kiosk format: equipment, recipes, training and partner support.",
		locale.French:    "Maison de Café est un format de kiosque à café clé en main : équipement, recettes, formation et accompagnement du partenaire.",
		locale.Dutch:     "Maison de Café is een kant-en-klaar koffiekioskformaat: apparatuur, recepten, training en partnerondersteuning.",
	},
}

// GoldAnswer returns the curated fallback for an intent; for IntentOther it
// falls back to the kb-missing text.
func GoldAnswer(intent Intent, lang locale.Language) string {
	if table, ok := goldAnswers[intent]; ok {
		if answer, ok := table[lang]; ok {
			return answer
		}

		return table[locale.Default]
	}

	return locale.Text(lang, locale.TextKBMissing)
}
