package registry

import "github.com/CultureBotAI/assay-metadata/internal/assay"

// kitDescriptions is the catalog of known commercial assay kits.
var kitDescriptions = map[assay.KitName]string{
	"API zym":        "Enzyme activity testing for 19 different enzymes using chromogenic substrates",
	"API 50CHac":     "Carbohydrate acidification (fermentation) test with 50 different carbohydrates",
	"API 50CHas":     "Carbohydrate assimilation test with 50 different carbohydrates",
	"API 20NE":       "Identification system for non-Enterobacteriaceae Gram-negative bacteria",
	"API 20E":        "Identification system for Enterobacteriaceae and other Gram-negative bacteria",
	"API rID32STR":   "Rapid identification of Streptococcus species with 32 tests",
	"API biotype100": "Comprehensive biochemical profiling with 99 different tests",
	"API coryne":     "Identification of Corynebacterium and related bacteria",
	"API rID32A":     "Rapid identification of anaerobic bacteria with 32 tests",
	"API ID32E":      "Extended identification of Enterobacteriaceae with 32 tests",
	"API NH":         "Identification of Neisseria, Haemophilus and related organisms",
	"API ID32STA":    "Identification of Staphylococcus and related cocci with 32 tests",
	"API CAM":        "Identification of Campylobacter species",
	"API 20STR":      "Identification of Streptococcus species with 20 tests",
	"API LIST":       "Identification of Listeria species",
	"API STA":        "Identification of Staphylococcus species",
	"API 20A":        "Identification of anaerobic bacteria with 20 tests",
}

// kitCategories classifies each cataloged kit by assay family.
var kitCategories = map[assay.KitName]string{
	"API zym":        "Enzyme profiling",
	"API 50CHac":     "Carbohydrate fermentation",
	"API 50CHas":     "Carbohydrate assimilation",
	"API 20NE":       "Bacterial identification",
	"API 20E":        "Bacterial identification",
	"API rID32STR":   "Bacterial identification",
	"API biotype100": "Biochemical profiling",
	"API coryne":     "Bacterial identification",
	"API rID32A":     "Bacterial identification",
	"API ID32E":      "Bacterial identification",
	"API NH":         "Bacterial identification",
	"API ID32STA":    "Bacterial identification",
	"API CAM":        "Bacterial identification",
	"API 20STR":      "Bacterial identification",
	"API LIST":       "Bacterial identification",
	"API STA":        "Bacterial identification",
	"API 20A":        "Bacterial identification",
}
