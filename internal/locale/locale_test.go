package locale

import "testing"

func TestMatchButtonResolvesAcrossLanguages(t *testing.T) {
	for _, lang := range All {
		for _, row := range menuOrder {
			for _, action := range row {
				label := Label(lang, action)
				if label == "" {
					t.Fatalf("missing label for %s/%s", lang, action)
				}

				gotAction, gotLang, ok := MatchButton(label)
				if !ok {
					t.Fatalf("label %q did not match", label)
				}

				if gotAction != action || gotLang != lang {
					t.Errorf("label %q resolved to %s/%s, want %s/%s", label, gotLang, gotAction, lang, action)
				}
			}
		}
	}
}

func TestMatchButtonRejectsNearMisses(t *testing.T) {
	tests := []string{
		"",
		"hello",
		"☕ What is Maison de Café ", // trailing space
		"what is maison de café",    // case and emoji stripped
		"💰 Opening costs",           // off by one word
	}

	for _, text := range tests {
		if _, _, ok := MatchButton(text); ok {
			t.Errorf("MatchButton(%q) matched, want no match", text)
		}
	}
}

func TestMatchLanguageName(t *testing.T) {
	for _, lang := range All {
		name := DisplayName(lang)

		got, ok := MatchLanguageName(name)
		if !ok || got != lang {
			t.Errorf("MatchLanguageName(%q) = %s, %v; want %s", name, got, ok, lang)
		}
	}

	if _, ok := MatchLanguageName("English"); ok {
		t.Error("bare language name without flag should not match")
	}
}

func TestMenuRowsShapeIsStable(t *testing.T) {
	for _, lang := range All {
		rows := MenuRows(lang)
		if len(rows) != len(menuOrder) {
			t.Fatalf("%s: got %d rows, want %d", lang, len(rows), len(menuOrder))
		}

		for i, row := range rows {
			if len(row) != len(menuOrder[i]) {
				t.Errorf("%s row %d: got %d buttons, want %d", lang, i, len(row), len(menuOrder[i]))
			}
		}
	}
}

func TestTextFallsBackToDefault(t *testing.T) {
	got := Text(Language("de"), TextWelcome)
	want := Text(Default, TextWelcome)

	if got != want {
		t.Errorf("unknown language should fall back to default: got %q", got)
	}

	if Text(English, TextWelcome) == "" {
		t.Error("english welcome text is empty")
	}
}

func TestIsCancelWord(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"cancel", true},
		{" Cancel ", true},
		{"скасувати", true},
		{"отмена", true},
		{"annuler", true},
		{"annuleren", true},
		{"cancellation", false},
		{"ok", false},
	}

	for _, tc := range tests {
		if got := IsCancelWord(tc.text); got != tc.want {
			t.Errorf("IsCancelWord(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestInstructionsEmbedStrictRules(t *testing.T) {
	for _, lang := range All {
		base := Instructions(lang, "")
		if base == "" {
			t.Fatalf("%s: empty instructions", lang)
		}

		withTask := Instructions(lang, ActionPrice)
		if len(withTask) <= len(base) {
			t.Errorf("%s: button prompt for %s not appended", lang, ActionPrice)
		}
	}
}
