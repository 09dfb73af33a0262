package registry

import "github.com/CultureBotAI/assay-metadata/internal/assay"

// substrates maps global well codes to chemical identifiers. Kit
// overrides take precedence over these rows when a kit is known.
var substrates = map[assay.WellCode]Substrate{
	// Monosaccharides
	"GLU":  {Name: "D-Glucose", ChebiID: "CHEBI:17234", Pubchem: "5793"},
	"FRU":  {Name: "D-Fructose", ChebiID: "CHEBI:15824", Pubchem: "5984"},
	"GAL":  {Name: "D-Galactose", ChebiID: "CHEBI:28061", Pubchem: "6036"},
	"MAN":  {Name: "D-Mannitol", ChebiID: "CHEBI:16899", Pubchem: "6251"}, // ambiguous; API 20E overrides to mannose
	"MANN": {Name: "D-Mannose", ChebiID: "CHEBI:4208", Pubchem: "18950"},
	"RIB":  {Name: "D-Ribose", ChebiID: "CHEBI:47013", Pubchem: "5779"},
	"XYL":  {Name: "D-Xylose", ChebiID: "CHEBI:17140", Pubchem: "135191"},
	"DXYL": {Name: "D-Xylose", ChebiID: "CHEBI:17140", Pubchem: "135191"},
	"LXYL": {Name: "L-Xylose", ChebiID: "CHEBI:33917", Pubchem: "5289597"},
	"ARA":  {Name: "L-Arabinose", ChebiID: "CHEBI:17553", Pubchem: "439195"},
	"LARA": {Name: "L-Arabinose", ChebiID: "CHEBI:17553", Pubchem: "439195"},
	"DARA": {Name: "D-Arabinose", ChebiID: "CHEBI:16731", Pubchem: "439197"},

	// Disaccharides
	"MAL": {Name: "Maltose", ChebiID: "CHEBI:17306", Pubchem: "6255"},
	"LAC": {Name: "Lactose", ChebiID: "CHEBI:17716", Pubchem: "6134"},
	"SAC": {Name: "Sucrose", ChebiID: "CHEBI:17992", Pubchem: "5988"},
	"TRE": {Name: "Trehalose", ChebiID: "CHEBI:16551", Pubchem: "7427"},
	"CEL": {Name: "Cellobiose", ChebiID: "CHEBI:17057", Pubchem: "10712"},
	"MEL": {Name: "Melibiose", ChebiID: "CHEBI:28117", Pubchem: "440658"},

	// Trisaccharides
	"RAF": {Name: "Raffinose", ChebiID: "CHEBI:16634", Pubchem: "439242"},
	"MLZ": {Name: "Melezitose", ChebiID: "CHEBI:28283", Pubchem: "92817"},

	// Glycosides and complex carbohydrates
	"AMY":  {Name: "Amygdalin", ChebiID: "CHEBI:17019", Pubchem: "656516"},
	"AMYL": {Name: "Starch (Amylose)", ChebiID: "CHEBI:28017", Pubchem: "24836924"},
	"GLYG": {Name: "Glycogen", ChebiID: "CHEBI:28087", Pubchem: "439177"},
	"INU":  {Name: "Inulin", ChebiID: "CHEBI:15443", Pubchem: "24763"},

	// Sugar alcohols
	"SOR": {Name: "D-Sorbitol", ChebiID: "CHEBI:17924", Pubchem: "5780"},
	"MNE": {Name: "D-Mannose", ChebiID: "CHEBI:4208", Pubchem: "18950"},
	"INO": {Name: "myo-Inositol", ChebiID: "CHEBI:17268", Pubchem: "892"},
	"DUL": {Name: "Dulcitol", ChebiID: "CHEBI:42118", Pubchem: "11850"},
	"ADO": {Name: "Adonitol", ChebiID: "CHEBI:2509", Pubchem: "64639"},

	// Amino sugars
	"NAG": {Name: "N-Acetyl-D-glucosamine", ChebiID: "CHEBI:28009", Pubchem: "24139"},

	// Deoxy sugars
	"RHA":  {Name: "L-Rhamnose", ChebiID: "CHEBI:27907", Pubchem: "25310"},
	"DFUC": {Name: "D-Fucose", ChebiID: "CHEBI:42589", Pubchem: "246422"},
	"LFUC": {Name: "L-Fucose", ChebiID: "CHEBI:2181", Pubchem: "17106"},

	// Uronic acids
	"GDC": {Name: "Gluconic acid", ChebiID: "CHEBI:33198", Pubchem: "10690"},

	// Glycosides
	"ESC": {Name: "Esculin", ChebiID: "CHEBI:4806", Pubchem: "5281417"},
	"SAL": {Name: "Salicin", ChebiID: "CHEBI:17814", Pubchem: "439503"},
	"ARB": {Name: "Arbutin", ChebiID: "CHEBI:2599", Pubchem: "440936"},

	// Organic acids
	"CIT": {Name: "Citrate", ChebiID: "CHEBI:30769", Pubchem: "311"},
	"LAT": {Name: "Lactate", ChebiID: "CHEBI:422", Pubchem: "107689"},
	"PAT": {Name: "Pyruvic acid", ChebiID: "CHEBI:32816", Pubchem: "1060"},
	"SUC": {Name: "Succinic acid", ChebiID: "CHEBI:15741", Pubchem: "1110"},
	"FUM": {Name: "Fumaric acid", ChebiID: "CHEBI:18012", Pubchem: "444972"},
	"2KG": {Name: "2-Ketogluconic acid", ChebiID: "CHEBI:17978", Pubchem: "7427"},
	"5KG": {Name: "5-Ketogluconic acid", ChebiID: "CHEBI:17991", Pubchem: "160957"},

	// Glycerol and polyols
	"GLY": {Name: "Glycerol", ChebiID: "CHEBI:17754", Pubchem: "753"},

	// Amino acids
	"TRY":  {Name: "L-Tryptophan", ChebiID: "CHEBI:16828", Pubchem: "6305"},
	"GLN":  {Name: "L-Glutamine", ChebiID: "CHEBI:58359", Pubchem: "5961"},
	"PRO":  {Name: "L-Proline", ChebiID: "CHEBI:26271", Pubchem: "145742"},
	"DALA": {Name: "D-Alanine", ChebiID: "CHEBI:15570", Pubchem: "71080"},
	"LALA": {Name: "L-Alanine", ChebiID: "CHEBI:16449", Pubchem: "5950"},
	"SER":  {Name: "L-Serine", ChebiID: "CHEBI:17115", Pubchem: "5951"},
	"TYR":  {Name: "L-Tyrosine", ChebiID: "CHEBI:17895", Pubchem: "6057"},

	// Organic acids (continued)
	"ADI": {Name: "Adipate", ChebiID: "CHEBI:30831", Pubchem: "196"},

	// Others
	"URE":  {Name: "Urea", ChebiID: "CHEBI:16199", Pubchem: "1176"},
	"GEL":  {Name: "Gelatin", ChebiID: "CHEBI:5291"},
	"ONPG": {Name: "o-Nitrophenyl-β-D-galactopyranoside", ChebiID: "CHEBI:70697", Pubchem: "4625"},

	// Modified sugars
	"MDX": {Name: "Methyl-D-xyloside", ChebiID: "CHEBI:73011", Pubchem: "92816"},
	"MDM": {Name: "Methyl-α-D-mannopyranoside", ChebiID: "CHEBI:50031", Pubchem: "97143"},
	"MDG": {Name: "Methyl-α-D-glucopyranoside", ChebiID: "CHEBI:27960", Pubchem: "11266"},

	// Rare sugars
	"LYX":  {Name: "D-Lyxose", ChebiID: "CHEBI:12301", Pubchem: "439236"},
	"TAG":  {Name: "D-Tagatose", ChebiID: "CHEBI:17004", Pubchem: "439654"},
	"SBE":  {Name: "D-Sorbose", ChebiID: "CHEBI:17262", Pubchem: "439192"},
	"GEN":  {Name: "Gentiobiose", ChebiID: "CHEBI:18296", Pubchem: "53234"},
	"TUR":  {Name: "Turanose", ChebiID: "CHEBI:27806", Pubchem: "439532"},
	"AMD":  {Name: "Amidon (Starch)", ChebiID: "CHEBI:28017", Pubchem: "24836924"},
	"XLT":  {Name: "Xylitol", ChebiID: "CHEBI:17151", Pubchem: "6912"},
	"DARL": {Name: "D-Arabitol", ChebiID: "CHEBI:16708", Pubchem: "94154"},
	"LARL": {Name: "L-Arabitol", ChebiID: "CHEBI:18087", Pubchem: "439255"},
	"GNT":  {Name: "Gluconate", ChebiID: "CHEBI:33198", Pubchem: "10690"},

	// Additional substrates
	"ERY":  {Name: "Erythritol", ChebiID: "CHEBI:17113", Pubchem: "222285"},
	"FUC":  {Name: "Fucose", ChebiID: "CHEBI:33984"},
	"Q":    {Name: "Quinate", ChebiID: "CHEBI:17521", Pubchem: "6508"},
	"G1P":  {Name: "Glucose-1-phosphate", ChebiID: "CHEBI:16077", Pubchem: "65533"},
	"MLT":  {Name: "Malate", ChebiID: "CHEBI:30796", Pubchem: "525"},
	"CAP":  {Name: "Caprate", ChebiID: "CHEBI:30813", Pubchem: "3893"},
	"PAC":  {Name: "Phenylacetate", ChebiID: "CHEBI:30745", Pubchem: "999"},
	"GAT":  {Name: "Galactitol", ChebiID: "CHEBI:16813", Pubchem: "11850"},
	"GRT":  {Name: "Glucuronate", ChebiID: "CHEBI:47926", Pubchem: "94715"},
	"HIS":  {Name: "L-Histidine", ChebiID: "CHEBI:15971", Pubchem: "6274"},
	"ACE":  {Name: "Acetate", ChebiID: "CHEBI:30089", Pubchem: "176"},
	"PROP": {Name: "Propionate", ChebiID: "CHEBI:30768", Pubchem: "1032"},
	"MNT":  {Name: "Maltotriose", ChebiID: "CHEBI:17253", Pubchem: "439586"},
	"PUL":  {Name: "Pullulan", ChebiID: "CHEBI:28653"},
	"GTA":  {Name: "Glutamate", ChebiID: "CHEBI:29985", Pubchem: "33032"},
	"ITA":  {Name: "Itaconate", ChebiID: "CHEBI:30838", Pubchem: "811"},
	"CDEX": {Name: "Cyclodextrin", ChebiID: "CHEBI:495083"},
	"MUC":  {Name: "Mucate", ChebiID: "CHEBI:30850", Pubchem: "5460682"},
	"3OBU": {Name: "3-Hydroxybutyrate", ChebiID: "CHEBI:20067", Pubchem: "441"},
	"2KT":  {Name: "2-Ketoglutarate", ChebiID: "CHEBI:16810", Pubchem: "51"},
}
