package registry

import "github.com/CultureBotAI/assay-metadata/internal/assay"

// primaryEnzymeTests maps well codes that are enzyme tests, not
// substrates, to canonical enzyme names.
var primaryEnzymeTests = map[assay.WellCode]string{
	"URE":     "Urease",
	"GEL":     "Gelatinase",
	"PAL":     "Phenylalanine deaminase",
	"IND":     "Indole production",
	"VP":      "Voges-Proskauer",
	"TDA":     "Tryptophan deaminase",
	"TDA Trp": "Tryptophan deaminase",
	"H2S":     "Hydrogen sulfide production",
	"NIT":     "Nitrate reductase",
	"NO2":     "Nitrite reduction",
	"NO3":     "Nitrate reduction", // API 20NE code
	"N2":      "Nitrogen gas production",
	"OX":      "Cytochrome oxidase",
	"ONPG":    "β-galactosidase (ONPG)",
	"PNG":     "β-galactosidase (PNPG)", // API 20NE code
	"TRP":     "Tryptophane test",       // API 20NE code
}

// extendedEnzymeTests maps enzyme activity codes from the wider kit
// families to canonical enzyme names. Consulted after the primary
// table misses.
var extendedEnzymeTests = map[assay.WellCode]string{
	// Decarboxylases and dihydrolases
	"ADH Arg": "Arginine dihydrolase",
	"ADH":     "Arginine dihydrolase",
	"LDC Lys": "Lysine decarboxylase",
	"LDC":     "Lysine decarboxylase",
	"ODC":     "Ornithine decarboxylase",

	// Amino acid arylamidases
	"ArgA": "Arginine arylamidase",
	"ProA": "Proline arylamidase",
	"LeuA": "Leucine arylamidase",
	"PyrA": "Pyroglutamic acid arylamidase",
	"TyrA": "Tyrosine arylamidase",
	"AlaA": "Alanine arylamidase",
	"GlyA": "Glycine arylamidase",
	"HisA": "Histidine arylamidase",
	"SerA": "Serine arylamidase",
	"PheA": "Phenylalanine arylamidase",
	"LGA":  "Glutamyl glutamic acid arylamidase",
	"GGA":  "Glutamyl glutamic acid arylamidase", // variant code
	"AspA": "Aspartic acid arylamidase",

	// Peptidases and proteases
	"LAP":  "Leucine aminopeptidase",
	"PYRA": "Pyrrolidonyl arylamidase",
	"HIP":  "Hippurate hydrolysis",
	"GGT":  "Gamma-glutamyl transferase",
	"EST":  "Esterase",
	"LIP":  "Lipase",

	// Glycosidases
	"PNPG":     "β-galactosidase (PNPG)",
	"MaGa":     "α-galactosidase (Mannosidase)",
	"MbGa":     "β-galactosidase",
	"MbGu":     "β-glucuronidase",
	"Mbeta DG": "β-galactosidase",
	// Greek letter prefix glycosidases (abbreviated codes)
	"alpha GAL": "α-galactosidase",
	"alpha GLU": "α-glucosidase",
	"alpha MAN": "α-mannosidase",
	"alpha ARA": "α-arabinosidase",
	"alpha FUC": "α-fucosidase",
	"alphaMAL":  "α-maltosidase",
	"beta GAL":  "β-galactosidase",
	"beta GLU":  "β-glucosidase",
	"beta GUR":  "β-glucuronidase",
	"beta NAG":  "β-N-acetyl-glucosaminidase",
	"beta GAR":  "β-galactosidase", // variant code
	"beta GP":   "β-glycosidase",
	"beta MAN":  "β-mannosidase",

	// Other enzymes
	"CAT":  "Catalase",
	"PYZ":  "Pyrazinamidase",
	"PLE":  "Phospholipase",
	"APPA": "Alanine-phenylalanine-proline arylamidase",

	// Assimilation/fermentation variants
	"GLU_ Assim": "Glucose assimilation",
	"GLU_ Ferm":  "Glucose fermentation",
}
