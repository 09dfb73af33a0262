package registry

import "github.com/CultureBotAI/assay-metadata/internal/assay"

// kitOverrides replaces the global tables for ambiguous codes when the
// kit context is known. An override that hits ends resolution for that
// code; the global tables are never consulted afterwards.
var kitOverrides = map[assay.KitName]map[assay.WellCode]Override{
	"API 20E": {
		// In API 20E, MAN = D-Mannose (not Mannitol)
		"MAN": {Name: "D-Mannose", ChebiID: "CHEBI:4208", Pubchem: "18950"},
		// ONPG is technically the substrate, but the official sheets
		// report the enzyme
		"ONPG": {Name: "β-galactosidase", Substrate: "o-Nitrophenyl-β-D-galactopyranoside"},
		// Capitalization variant
		"Sor": {Name: "D-Sorbitol", ChebiID: "CHEBI:17924", Pubchem: "5780"},
	},
	"API 20NE": {
		// In API 20NE, MAN = D-Mannitol, MNE = D-Mannose
		"MAN": {Name: "D-Mannitol", ChebiID: "CHEBI:16899", Pubchem: "6251"},
		"MNE": {Name: "D-Mannose", ChebiID: "CHEBI:4208", Pubchem: "18950"},
		// Official naming
		"NAG": {Name: "N-Acetyl-Glucosamine", ChebiID: "CHEBI:28009", Pubchem: "24139"},
		"PAC": {Name: "Phenyl-acetate", ChebiID: "CHEBI:30745", Pubchem: "999"},
	},
	"API zym": {
		"Control": {Name: "Negative control", Control: true},
		// API zym uses full enzyme names as codes, with spacing variants
		// seen in raw exports
		"Alkaline phosphatase":            {Name: "Alkaline phosphatase", EC: "3.1.3.1"},
		"Esterase (C4)":                   {Name: "Esterase (C4)", EC: "3.1.1.-"},
		"Esterase":                        {Name: "Esterase (C4)", EC: "3.1.1.-"},
		"Esterase lipase (C8)":            {Name: "Esterase lipase (C8)", EC: "3.1.1.-"},
		"Esterase Lipase":                 {Name: "Esterase lipase (C8)", EC: "3.1.1.-"},
		"Lipase (C14)":                    {Name: "Lipase (C14)", EC: "3.1.1.3"},
		"Lipase":                          {Name: "Lipase (C14)", EC: "3.1.1.3"},
		"Leucine arylamidase":             {Name: "Leucine arylamidase", EC: "3.4.11.1"},
		"Valine arylamidase":              {Name: "Valine arylamidase", EC: "3.4.11.-"},
		"Cystine arylamidase":             {Name: "Cystine arylamidase", EC: "3.4.11.-"},
		"Trypsin":                         {Name: "Trypsin", EC: "3.4.21.4"},
		"alpha-Chymotrypsin":              {Name: "alpha-Chymotrypsin", EC: "3.4.21.1"},
		"alpha- Chymotrypsin":             {Name: "alpha-Chymotrypsin", EC: "3.4.21.1"},
		"Acid phosphatase":                {Name: "Acid phosphatase", EC: "3.1.3.2"},
		"Naphthol-AS-BI-phosphohydrolase": {Name: "Naphthol-AS-BI-phosphohydrolase", EC: "3.1.3.-"},
		"alpha-Galactosidase":             {Name: "alpha-Galactosidase", EC: "3.2.1.22"},
		"alpha- Galactosidase":            {Name: "alpha-Galactosidase", EC: "3.2.1.22"},
		"beta-Galactosidase":              {Name: "beta-Galactosidase", EC: "3.2.1.23"},
		"beta- Galactosidase":             {Name: "beta-Galactosidase", EC: "3.2.1.23"},
		"beta-Glucuronidase":              {Name: "beta-Glucuronidase", EC: "3.2.1.31"},
		"beta- Glucuronidase":             {Name: "beta-Glucuronidase", EC: "3.2.1.31"},
		"alpha-Glucosidase":               {Name: "alpha-Glucosidase", EC: "3.2.1.20"},
		"alpha- Glucosidase":              {Name: "alpha-Glucosidase", EC: "3.2.1.20"},
		"beta-Glucosidase":                {Name: "beta-Glucosidase", EC: "3.2.1.21"},
		"beta- Glucosidase":               {Name: "beta-Glucosidase", EC: "3.2.1.21"},
		"N-acetyl-beta-glucosaminidase":   {Name: "N-acetyl-beta-glucosaminidase", EC: "3.2.1.52"},
		"N-acetyl-beta- glucosaminidase":  {Name: "N-acetyl-beta-glucosaminidase", EC: "3.2.1.52"},
		"alpha-Mannosidase":               {Name: "alpha-Mannosidase", EC: "3.2.1.24"},
		"alpha- Mannosidase":              {Name: "alpha-Mannosidase", EC: "3.2.1.24"},
		"alpha-Fucosidase":                {Name: "alpha-Fucosidase", EC: "3.2.1.51"},
		"alpha- Fucosidase":               {Name: "alpha-Fucosidase", EC: "3.2.1.51"},
	},
}
