package domain

// Locale selects the wording of built-in category suggestions. The semantic
// categories are the same in every locale.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleBengali Locale = "bn"
)

var defaultSuggestions = map[Locale]map[TransactionType][]string{
	LocaleEnglish: {
		Income:  {"Salary", "Gift", "Bonus", "Interest"},
		Expense: {"Groceries", "Shopping", "Bills", "Transport"},
	},
	LocaleBengali: {
		Income:  {"বেতন", "উপহার", "বোনাস", "মুনাফা"},
		Expense: {"মুদিখানা", "কেনাকাটা", "বিল", "পরিবহন"},
	},
}

// DefaultSuggestions returns the built-in category suggestion list for a
// transaction type in the given locale. The returned slice is a copy; built-in
// defaults are never persisted. Unknown locales fall back to English.
func DefaultSuggestions(t TransactionType, loc Locale) []string {
	byType, ok := defaultSuggestions[loc]
	if !ok {
		byType = defaultSuggestions[LocaleEnglish]
	}
	defaults := byType[t]
	out := make([]string, len(defaults))
	copy(out, defaults)
	return out
}
