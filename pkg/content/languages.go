package content

import (
	"github.com/lecternapp/lectern/pkg/models"
)

// Languages returns the supported-language reference list. The set changes
// rarely and must be available with zero latency at boot, so it is compiled
// in rather than fetched.
func Languages() []*models.Language {
	return []*models.Language{
		{Code: "en", Name: "English", NativeName: "English", BookCount: 66},
		{Code: "es", Name: "Spanish", NativeName: "Español", BookCount: 66},
		{Code: "pt", Name: "Portuguese", NativeName: "Português", BookCount: 66},
		{Code: "fr", Name: "French", NativeName: "Français", BookCount: 66},
		{Code: "de", Name: "German", NativeName: "Deutsch", BookCount: 66},
		{Code: "ru", Name: "Russian", NativeName: "Русский", BookCount: 66},
		{Code: "zh", Name: "Chinese", NativeName: "中文", BookCount: 66},
		{Code: "hi", Name: "Hindi", NativeName: "हिन्दी", BookCount: 66},
		{Code: "sw", Name: "Swahili", NativeName: "Kiswahili", BookCount: 66},
	}
}
