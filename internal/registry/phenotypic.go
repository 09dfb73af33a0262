package registry

import "github.com/CultureBotAI/assay-metadata/internal/assay"

// phenotypicTests maps morphological, resistance, and growth test
// codes to descriptive names. These wells carry no chemical or enzyme
// identifiers.
var phenotypicTests = map[assay.WellCode]string{
	"Control": "Control well (no substrate)",
	"NO3":     "Nitrate reduction",
	"TRP":     "Tryptophan test",
	"MOB":     "Motility",
	"SPOR":    "Sporulation",
	"GRAM":    "Gram stain",
	"TTC":     "Tetrazolium reduction",
	"OF-F":    "Oxidative-fermentative (fermentative)",
	"OF-O":    "Oxidative-fermentative (oxidative)",
	"NOVO":    "Novobiocin resistance",
	"RP":      "Reverse CAMP test",
	"COCC":    "Coagulase test",
	"CATE":    "Catalase test",
	"Trypsin": "Trypsin activity",

	// Growth tests
	"NAL": "Nalidixic acid resistance",
	"PEN": "Penicillin resistance",
	"CFZ": "Cefoxitin resistance",

	// Metabolism indicators
	"BET":  "Betaine utilization",
	"ETN":  "Ethanol utilization",
	"ABT":  "Arabitol",
	"MTL":  "Mannitol utilization",
	"AVT":  "Arabinose variant test",
	"BAT":  "Beta-alanine test",
	"CMT":  "Coumarin test",
	"CYT":  "Cytochrome test",
	"DIM":  "Dimethyl test",
	"ERO":  "Erythromycin test",
	"GRE":  "Green fluorescence",
	"GTE":  "Gelatin liquefaction variant",
	"GYT":  "Glycerol test variant",
	"HBG":  "Hemoglobin test",
	"HIN":  "Hippurate test variant",
	"LMLT": "L-Malate test",
	"DMLT": "D-Malate test",
	"LSTR": "L-Serine test",
	"LTAT": "L-Tartrate",
	"DTAT": "D-Tartrate",
	"MTAT": "Meso-Tartrate",
	"LTE":  "Lactose variant test",
	"MAC":  "MacConkey agar",
	"MTE":  "Maltose variant test",
	"PCE":  "Penicillin variant",
	"PPAT": "Phenylpyruvic acid test",
	"QAT":  "Quinine test",
	"SAT":  "Salicin variant test",
	"SUT":  "Sucrose variant test",
	"TATE": "Tartrate variant test",
	"TGE":  "Trehalose variant test",
	"TTN":  "Tetanus toxin",
	"TTE":  "Trehalose variant enzyme",
	"APT":  "Alanine-phenylalanine-proline test",
	"GNT":  "Gluconate",
	"GTT":  "Glutamate test",
	"3MDG": "3-Methyl-D-glucose",
	"mOBE": "meta-hydroxybenzoate",
	"pOBE": "para-hydroxybenzoate",
}
