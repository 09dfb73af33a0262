package registry

import "github.com/CultureBotAI/assay-metadata/internal/assay"

// enzymeAnnotations maps canonical enzyme names to GO and KEGG
// identifiers. An annotated EC number takes precedence over one looked
// up in the EC tables.
var enzymeAnnotations = map[string]Annotation{
	// Arylamidases
	"Arginine arylamidase": {
		GOTerms: []string{"GO:0070006"},
		GONames: []string{"metalloaminopeptidase activity"},
	},
	"Proline arylamidase": {
		GOTerms: []string{"GO:0016805"},
		GONames: []string{"dipeptidase activity"},
	},
	"Leucine arylamidase": {
		GOTerms:  []string{"GO:0004177", "GO:0070006"},
		GONames:  []string{"aminopeptidase activity", "metalloaminopeptidase activity"},
		KeggKO:   "K01255",
		ECNumber: "3.4.11.1",
	},
	"Pyroglutamic acid arylamidase": {
		GOTerms:  []string{"GO:0017095"},
		GONames:  []string{"pyroglutamyl-peptidase I activity"},
		ECNumber: "3.4.19.3",
	},
	"Tyrosine arylamidase": {
		GOTerms: []string{"GO:0070006"},
		GONames: []string{"metalloaminopeptidase activity"},
	},
	"Alanine arylamidase": {
		GOTerms:  []string{"GO:0004177"},
		GONames:  []string{"aminopeptidase activity"},
		KeggKO:   "K01256",
		ECNumber: "3.4.11.2",
	},
	"Glycine arylamidase": {
		GOTerms: []string{"GO:0004177"},
		GONames: []string{"aminopeptidase activity"},
	},
	"Histidine arylamidase": {
		GOTerms: []string{"GO:0070006"},
		GONames: []string{"metalloaminopeptidase activity"},
	},
	"Serine arylamidase": {
		GOTerms: []string{"GO:0004177"},
		GONames: []string{"aminopeptidase activity"},
	},
	"Phenylalanine arylamidase": {
		GOTerms: []string{"GO:0070006"},
		GONames: []string{"metalloaminopeptidase activity"},
	},
	"Glutamyl glutamic acid arylamidase": {
		GOTerms: []string{"GO:0004177"},
		GONames: []string{"aminopeptidase activity"},
	},
	"Aspartic acid arylamidase": {
		GOTerms: []string{"GO:0070006"},
		GONames: []string{"metalloaminopeptidase activity"},
	},

	// Decarboxylases and dihydrolases
	"Arginine dihydrolase": {
		GOTerms:  []string{"GO:0008792"},
		GONames:  []string{"arginine deiminase activity"},
		KeggKO:   "K01478",
		ECNumber: "3.5.3.6",
	},
	"Lysine decarboxylase": {
		GOTerms:  []string{"GO:0008923"},
		GONames:  []string{"lysine decarboxylase activity"},
		KeggKO:   "K01582",
		ECNumber: "4.1.1.18",
	},
	"Ornithine decarboxylase": {
		GOTerms:  []string{"GO:0004586"},
		GONames:  []string{"ornithine decarboxylase activity"},
		KeggKO:   "K01581",
		ECNumber: "4.1.1.17",
	},

	// Peptidases
	"Leucine aminopeptidase": {
		GOTerms:  []string{"GO:0004177", "GO:0070006"},
		GONames:  []string{"aminopeptidase activity", "metalloaminopeptidase activity"},
		KeggKO:   "K01255",
		ECNumber: "3.4.11.1",
	},
	"Pyrrolidonyl arylamidase": {
		GOTerms:  []string{"GO:0017095"},
		GONames:  []string{"pyroglutamyl-peptidase I activity"},
		KeggKO:   "K01304",
		ECNumber: "3.4.19.3",
	},
	"Hippurate hydrolysis": {
		GOTerms:  []string{"GO:0016810"},
		GONames:  []string{"hydrolase activity, acting on carbon-nitrogen (but not peptide) bonds"},
		ECNumber: "3.5.1.32",
	},
	"Gamma-glutamyl transferase": {
		GOTerms:  []string{"GO:0003840"},
		GONames:  []string{"gamma-glutamyltransferase activity"},
		KeggKO:   "K00681",
		ECNumber: "2.3.2.2",
	},

	// Lipases and esterases
	"Esterase": {
		GOTerms:  []string{"GO:0016788"},
		GONames:  []string{"hydrolase activity, acting on ester bonds"},
		KeggKO:   "K01066",
		ECNumber: "3.1.1.-", // family level, no exact match to a specific esterase
	},
	"Lipase": {
		GOTerms:  []string{"GO:0004806"},
		GONames:  []string{"triglyceride lipase activity"},
		KeggKO:   "K01046",
		ECNumber: "3.1.1.3",
	},
	"Phospholipase": {
		GOTerms:  []string{"GO:0004620"},
		GONames:  []string{"phospholipase activity"},
		KeggKO:   "K01114",
		ECNumber: "3.1.1.32",
	},

	// Glycosidases
	"β-galactosidase": {
		GOTerms:  []string{"GO:0004565"},
		GONames:  []string{"beta-galactosidase activity"},
		KeggKO:   "K01190",
		ECNumber: "3.2.1.23",
	},
	"β-galactosidase (PNPG)": {
		GOTerms:  []string{"GO:0004565"},
		GONames:  []string{"beta-galactosidase activity"},
		KeggKO:   "K01190",
		ECNumber: "3.2.1.23",
	},
	"α-galactosidase": {
		GOTerms:  []string{"GO:0004557"},
		GONames:  []string{"alpha-galactosidase activity"},
		KeggKO:   "K07407",
		ECNumber: "3.2.1.22",
	},
	"α-galactosidase (Mannosidase)": {
		GOTerms:  []string{"GO:0004557"},
		GONames:  []string{"alpha-galactosidase activity"},
		KeggKO:   "K07407",
		ECNumber: "3.2.1.22",
	},
	"β-glucuronidase": {
		GOTerms:  []string{"GO:0004566"},
		GONames:  []string{"beta-glucuronidase activity"},
		KeggKO:   "K01195",
		ECNumber: "3.2.1.31",
	},

	// Oxidoreductases
	"Catalase": {
		GOTerms:  []string{"GO:0004096"},
		GONames:  []string{"catalase activity"},
		KeggKO:   "K03781",
		ECNumber: "1.11.1.6",
	},
	"Cytochrome oxidase": {
		GOTerms:  []string{"GO:0004129"},
		GONames:  []string{"cytochrome-c oxidase activity"},
		KeggKO:   "K02274",
		ECNumber: "1.9.3.1",
	},
	"Nitrate reductase": {
		GOTerms:  []string{"GO:0008940"},
		GONames:  []string{"nitrate reductase activity"},
		KeggKO:   "K00370",
		ECNumber: "1.7.99.4",
	},

	// Hydrolases
	"Urease": {
		GOTerms:  []string{"GO:0009039"},
		GONames:  []string{"urease activity"},
		KeggKO:   "K01428",
		ECNumber: "3.5.1.5",
	},
	"Gelatinase": {
		GOTerms:  []string{"GO:0004222"},
		GONames:  []string{"metalloendopeptidase activity"},
		KeggKO:   "K01398",
		ECNumber: "3.4.24.4",
	},
	"Pyrazinamidase": {
		GOTerms:  []string{"GO:0050336"},
		GONames:  []string{"pyrazinamidase activity"},
		ECNumber: "3.5.1.19",
	},

	// Lyases
	"Phenylalanine deaminase": {
		GOTerms:  []string{"GO:0004664"},
		GONames:  []string{"phenylalanine ammonia-lyase activity"},
		KeggKO:   "K10775",
		ECNumber: "4.3.1.24",
	},
	"Tryptophan deaminase": {
		GOTerms:  []string{"GO:0006569"},
		GONames:  []string{"tryptophan catabolic process"},
		ECNumber: "4.1.99.1",
	},

	// Other enzymes
	"Alanine-phenylalanine-proline arylamidase": {
		GOTerms: []string{"GO:0004177"},
		GONames: []string{"aminopeptidase activity"},
	},

	// Common enzymes from extraction snapshots (various capitalizations)
	"alkaline phosphatase": {
		GOTerms:  []string{"GO:0004035"},
		GONames:  []string{"alkaline phosphatase activity"},
		KeggKO:   "K01077",
		ECNumber: "3.1.3.1",
	},
	"Alkaline phosphatase": {
		GOTerms:  []string{"GO:0004035"},
		GONames:  []string{"alkaline phosphatase activity"},
		KeggKO:   "K01077",
		ECNumber: "3.1.3.1",
	},
	"acid phosphatase": {
		GOTerms:  []string{"GO:0003993"},
		GONames:  []string{"acid phosphatase activity"},
		KeggKO:   "K01078",
		ECNumber: "3.1.3.2",
	},
	"Acid phosphatase": {
		GOTerms:  []string{"GO:0003993"},
		GONames:  []string{"acid phosphatase activity"},
		KeggKO:   "K01078",
		ECNumber: "3.1.3.2",
	},
	"beta-galactosidase": {
		GOTerms:  []string{"GO:0004565"},
		GONames:  []string{"beta-galactosidase activity"},
		KeggKO:   "K01190",
		ECNumber: "3.2.1.23",
	},
	"alpha-galactosidase": {
		GOTerms:  []string{"GO:0004557"},
		GONames:  []string{"alpha-galactosidase activity"},
		KeggKO:   "K07407",
		ECNumber: "3.2.1.22",
	},
	"alpha-glucosidase": {
		GOTerms:  []string{"GO:0004558"},
		GONames:  []string{"alpha-glucosidase activity"},
		KeggKO:   "K01187",
		ECNumber: "3.2.1.20",
	},
	"beta-glucosidase": {
		GOTerms:  []string{"GO:0008422"},
		GONames:  []string{"beta-glucosidase activity"},
		KeggKO:   "K01188",
		ECNumber: "3.2.1.21",
	},
	"N-acetyl-beta-glucosaminidase": {
		GOTerms:  []string{"GO:0004563"},
		GONames:  []string{"beta-N-acetylhexosaminidase activity"},
		KeggKO:   "K01207",
		ECNumber: "3.2.1.52",
	},
	"urease": {
		GOTerms:  []string{"GO:0009039"},
		GONames:  []string{"urease activity"},
		KeggKO:   "K01428",
		ECNumber: "3.5.1.5",
	},
	"catalase": {
		GOTerms:  []string{"GO:0004096"},
		GONames:  []string{"catalase activity"},
		KeggKO:   "K03781",
		ECNumber: "1.11.1.6",
	},
	"cytochrome oxidase": {
		GOTerms:  []string{"GO:0004129"},
		GONames:  []string{"cytochrome-c oxidase activity"},
		KeggKO:   "K02274",
		ECNumber: "1.9.3.1",
	},
	"gelatinase": {
		GOTerms:  []string{"GO:0004222"},
		GONames:  []string{"metalloendopeptidase activity"},
		KeggKO:   "K01398",
		ECNumber: "3.4.24.4",
	},
	"alcohol dehydrogenase": {
		GOTerms:  []string{"GO:0004022"},
		GONames:  []string{"alcohol dehydrogenase (NAD+) activity"},
		KeggKO:   "K00001",
		ECNumber: "1.1.1.1",
	},
	"alanine arylamidase": {
		GOTerms:  []string{"GO:0004177"},
		GONames:  []string{"aminopeptidase activity"},
		KeggKO:   "K01256",
		ECNumber: "3.4.11.2",
	},
	"chitinase": {
		GOTerms:  []string{"GO:0004568"},
		GONames:  []string{"chitinase activity"},
		KeggKO:   "K01183",
		ECNumber: "3.2.1.14",
	},
	"amylase": {
		GOTerms:  []string{"GO:0004556"},
		GONames:  []string{"alpha-amylase activity"},
		KeggKO:   "K01176",
		ECNumber: "3.2.1.1",
	},
	"xylanase": {
		GOTerms:  []string{"GO:0031176"},
		GONames:  []string{"endo-1,4-beta-xylanase activity"},
		KeggKO:   "K01181",
		ECNumber: "3.2.1.8",
	},

	// API zym enzymes (note space after dash in raw exports)
	"Trypsin": {
		GOTerms:  []string{"GO:0004252"},
		GONames:  []string{"serine-type endopeptidase activity"},
		KeggKO:   "K01312",
		ECNumber: "3.4.21.4",
	},
	"alpha- Chymotrypsin": {
		GOTerms:  []string{"GO:0004252"},
		GONames:  []string{"serine-type endopeptidase activity"},
		KeggKO:   "K01311",
		ECNumber: "3.4.21.1",
	},
	"Esterase Lipase": {
		GOTerms:  []string{"GO:0052689"},
		GONames:  []string{"carboxylic ester hydrolase activity"},
		KeggKO:   "K01066",
		ECNumber: "3.1.1.1",
	},
	"Valine arylamidase": {
		GOTerms:  []string{"GO:0070006"},
		GONames:  []string{"metalloaminopeptidase activity"},
		KeggKO:   "K01255",
		ECNumber: "3.4.11.6",
	},
	"Cystine arylamidase": {
		GOTerms:  []string{"GO:0008234"},
		GONames:  []string{"cysteine-type peptidase activity"},
		ECNumber: "3.4.22.-",
	},
	"Naphthol-AS-BI-phosphohydrolase": {
		GOTerms:  []string{"GO:0004035"},
		GONames:  []string{"alkaline phosphatase activity"},
		KeggKO:   "K01077",
		ECNumber: "3.1.3.1",
	},
	"alpha- Galactosidase": {
		GOTerms:  []string{"GO:0004557"},
		GONames:  []string{"alpha-galactosidase activity"},
		KeggKO:   "K07407",
		ECNumber: "3.2.1.22",
	},
	"beta- Galactosidase": {
		GOTerms:  []string{"GO:0004565"},
		GONames:  []string{"beta-galactosidase activity"},
		KeggKO:   "K01190",
		ECNumber: "3.2.1.23",
	},
	"beta- Glucuronidase": {
		GOTerms:  []string{"GO:0004566"},
		GONames:  []string{"beta-glucuronidase activity"},
		KeggKO:   "K01195",
		ECNumber: "3.2.1.31",
	},
	"alpha- Glucosidase": {
		GOTerms:  []string{"GO:0004558"},
		GONames:  []string{"alpha-glucosidase activity"},
		KeggKO:   "K01187",
		ECNumber: "3.2.1.20",
	},
	"beta- Glucosidase": {
		GOTerms:  []string{"GO:0008422"},
		GONames:  []string{"beta-glucosidase activity"},
		KeggKO:   "K05349",
		ECNumber: "3.2.1.21",
	},
	"N-acetyl-beta- glucosaminidase": {
		GOTerms:  []string{"GO:0004563"},
		GONames:  []string{"beta-N-acetylhexosaminidase activity"},
		KeggKO:   "K01207",
		ECNumber: "3.2.1.52",
	},
	"alpha- Mannosidase": {
		GOTerms:  []string{"GO:0004559"},
		GONames:  []string{"alpha-mannosidase activity"},
		KeggKO:   "K01191",
		ECNumber: "3.2.1.24",
	},
	"alpha- Fucosidase": {
		GOTerms:  []string{"GO:0004560"},
		GONames:  []string{"alpha-L-fucosidase activity"},
		KeggKO:   "K01206",
		ECNumber: "3.2.1.51",
	},
}

// goTermFallbacks assigns GO terms to tests that cannot carry an EC
// number, either because the activity is too generic or because the
// test spans a multi-enzyme pathway.
var goTermFallbacks = map[assay.WellCode]GOFallback{
	"beta GP": {
		GOID:   "GO:0004553",
		GOName: "hydrolase activity, hydrolyzing O-glycosyl compounds",
		Reason: "Generic β-glycosidase, substrate not specified",
	},
	"GLU_ Ferm": {
		GOID:   "GO:0019660",
		GOName: "glycolytic fermentation",
		Reason: "Multi-enzyme pathway: glucose to pyruvate to fermentation products",
	},
	"GLU_ Assim": {
		GOID:   "GO:1904659",
		GOName: "glucose transmembrane transport",
		Reason: "Multi-step process: transport, phosphorylation and metabolism",
	},
}
