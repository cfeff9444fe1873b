package script

// Unicode block classes, Unicode 15.1 Blocks.txt order.
const (
	Unknown Class = iota
	BasicLatin
	Latin1Supplement
	LatinExtendedA
	LatinExtendedB
	IPAExtensions
	SpacingModifierLetters
	CombiningDiacriticalMarks
	GreekAndCoptic
	Cyrillic
	CyrillicSupplement
	Armenian
	Hebrew
	Arabic
	Syriac
	ArabicSupplement
	Thaana
	NKo
	Samaritan
	Mandaic
	SyriacSupplement
	ArabicExtendedB
	ArabicExtendedA
	Devanagari
	Bengali
	Gurmukhi
	Gujarati
	Oriya
	Tamil
	Telugu
	Kannada
	Malayalam
	Sinhala
	Thai
	Lao
	Tibetan
	Myanmar
	Georgian
	HangulJamo
	Ethiopic
	EthiopicSupplement
	Cherokee
	UnifiedCanadianAboriginalSyllabics
	Ogham
	Runic
	Tagalog
	Hanunoo
	Buhid
	Tagbanwa
	Khmer
	Mongolian
	UnifiedCanadianAboriginalSyllabicsExtended
	Limbu
	TaiLe
	NewTaiLue
	KhmerSymbols
	Buginese
	TaiTham
	CombiningDiacriticalMarksExtended
	Balinese
	Sundanese
	Batak
	Lepcha
	OlChiki
	CyrillicExtendedC
	GeorgianExtended
	SundaneseSupplement
	VedicExtensions
	PhoneticExtensions
	PhoneticExtensionsSupplement
	CombiningDiacriticalMarksSupplement
	LatinExtendedAdditional
	GreekExtended
	GeneralPunctuation
	SuperscriptsAndSubscripts
	CurrencySymbols
	CombiningDiacriticalMarksForSymbols
	LetterlikeSymbols
	NumberForms
	Arrows
	MathematicalOperators
	MiscellaneousTechnical
	ControlPictures
	OpticalCharacterRecognition
	EnclosedAlphanumerics
	BoxDrawing
	BlockElements
	GeometricShapes
	MiscellaneousSymbols
	Dingbats
	MiscellaneousMathematicalSymbolsA
	SupplementalArrowsA
	BraillePatterns
	SupplementalArrowsB
	MiscellaneousMathematicalSymbolsB
	SupplementalMathematicalOperators
	MiscellaneousSymbolsAndArrows
	Glagolitic
	LatinExtendedC
	Coptic
	GeorgianSupplement
	Tifinagh
	EthiopicExtended
	CyrillicExtendedA
	SupplementalPunctuation
	CJKRadicalsSupplement
	KangxiRadicals
	IdeographicDescriptionCharacters
	CJKSymbolsAndPunctuation
	Hiragana
	Katakana
	Bopomofo
	HangulCompatibilityJamo
	Kanbun
	BopomofoExtended
	CJKStrokes
	KatakanaPhoneticExtensions
	EnclosedCJKLettersAndMonths
	CJKCompatibility
	CJKUnifiedIdeographsExtensionA
	YijingHexagramSymbols
	CJKUnifiedIdeographs
	YiSyllables
	YiRadicals
	Lisu
	Vai
	CyrillicExtendedB
	Bamum
	ModifierToneLetters
	LatinExtendedD
	SylotiNagri
	CommonIndicNumberForms
	PhagsPa
	Saurashtra
	DevanagariExtended
	KayahLi
	Rejang
	HangulJamoExtendedA
	Javanese
	MyanmarExtendedB
	Cham
	MyanmarExtendedA
	TaiViet
	MeeteiMayekExtensions
	EthiopicExtendedA
	LatinExtendedE
	CherokeeSupplement
	MeeteiMayek
	HangulSyllables
	HangulJamoExtendedB
	HighSurrogates
	HighPrivateUseSurrogates
	LowSurrogates
	PrivateUseArea
	CJKCompatibilityIdeographs
	AlphabeticPresentationForms
	ArabicPresentationFormsA
	VariationSelectors
	VerticalForms
	CombiningHalfMarks
	CJKCompatibilityForms
	SmallFormVariants
	ArabicPresentationFormsB
	HalfwidthAndFullwidthForms
	Specials
	LinearBSyllabary
	LinearBIdeograms
	AegeanNumbers
	AncientGreekNumbers
	AncientSymbols
	PhaistosDisc
	Lycian
	Carian
	CopticEpactNumbers
	OldItalic
	Gothic
	OldPermic
	Ugaritic
	OldPersian
	Deseret
	Shavian
	Osmanya
	Osage
	Elbasan
	CaucasianAlbanian
	Vithkuqi
	LinearA
	LatinExtendedF
	CypriotSyllabary
	ImperialAramaic
	Palmyrene
	Nabataean
	Hatran
	Phoenician
	Lydian
	MeroiticHieroglyphs
	MeroiticCursive
	Kharoshthi
	OldSouthArabian
	OldNorthArabian
	Manichaean
	Avestan
	InscriptionalParthian
	InscriptionalPahlavi
	PsalterPahlavi
	OldTurkic
	OldHungarian
	HanifiRohingya
	RumiNumeralSymbols
	Yezidi
	ArabicExtendedC
	OldSogdian
	Sogdian
	OldUyghur
	Chorasmian
	Elymaic
	Brahmi
	Kaithi
	SoraSompeng
	Chakma
	Mahajani
	Sharada
	SinhalaArchaicNumbers
	Khojki
	Multani
	Khudawadi
	Grantha
	Newa
	Tirhuta
	Siddham
	Modi
	MongolianSupplement
	Takri
	Ahom
	Dogra
	WarangCiti
	DivesAkuru
	Nandinagari
	ZanabazarSquare
	Soyombo
	UnifiedCanadianAboriginalSyllabicsExtendedA
	PauCinHau
	DevanagariExtendedA
	Bhaiksuki
	Marchen
	MasaramGondi
	GunjalaGondi
	Makasar
	Kawi
	LisuSupplement
	TamilSupplement
	Cuneiform
	CuneiformNumbersAndPunctuation
	EarlyDynasticCuneiform
	CyproMinoan
	EgyptianHieroglyphs
	EgyptianHieroglyphFormatControls
	AnatolianHieroglyphs
	BamumSupplement
	Mro
	Tangsa
	BassaVah
	PahawhHmong
	Medefaidrin
	Miao
	IdeographicSymbolsAndPunctuation
	Tangut
	TangutComponents
	KhitanSmallScript
	TangutSupplement
	KanaExtendedB
	KanaSupplement
	KanaExtendedA
	SmallKanaExtension
	Nushu
	Duployan
	ShorthandFormatControls
	ZnamennyMusicalNotation
	ByzantineMusicalSymbols
	MusicalSymbols
	AncientGreekMusicalNotation
	KaktovikNumerals
	MayanNumerals
	TaiXuanJingSymbols
	CountingRodNumerals
	MathematicalAlphanumericSymbols
	SuttonSignWriting
	LatinExtendedG
	GlagoliticSupplement
	CyrillicExtendedD
	NyiakengPuachueHmong
	Toto
	Wancho
	NagMundari
	EthiopicExtendedB
	MendeKikakui
	Adlam
	IndicSiyaqNumbers
	OttomanSiyaqNumbers
	ArabicMathematicalAlphabeticSymbols
	MahjongTiles
	DominoTiles
	PlayingCards
	EnclosedAlphanumericSupplement
	EnclosedIdeographicSupplement
	MiscellaneousSymbolsAndPictographs
	Emoticons
	OrnamentalDingbats
	TransportAndMapSymbols
	AlchemicalSymbols
	GeometricShapesExtended
	SupplementalArrowsC
	SupplementalSymbolsAndPictographs
	ChessSymbols
	SymbolsAndPictographsExtendedA
	SymbolsForLegacyComputing
	CJKUnifiedIdeographsExtensionB
	CJKUnifiedIdeographsExtensionC
	CJKUnifiedIdeographsExtensionD
	CJKUnifiedIdeographsExtensionE
	CJKUnifiedIdeographsExtensionF
	CJKCompatibilityIdeographsSupplement
	CJKUnifiedIdeographsExtensionG
	CJKUnifiedIdeographsExtensionH
	Tags
	VariationSelectorsSupplement
	SupplementaryPrivateUseAreaA
	SupplementaryPrivateUseAreaB

	numClasses
)

var blocks = [numClasses]block{
	Unknown:                                     {-1, -1, "Unknown"},
	BasicLatin:                                  {0x0000, 0x007F, "Basic Latin"},
	Latin1Supplement:                            {0x0080, 0x00FF, "Latin-1 Supplement"},
	LatinExtendedA:                              {0x0100, 0x017F, "Latin Extended-A"},
	LatinExtendedB:                              {0x0180, 0x024F, "Latin Extended-B"},
	IPAExtensions:                               {0x0250, 0x02AF, "IPA Extensions"},
	SpacingModifierLetters:                      {0x02B0, 0x02FF, "Spacing Modifier Letters"},
	CombiningDiacriticalMarks:                   {0x0300, 0x036F, "Combining Diacritical Marks"},
	GreekAndCoptic:                              {0x0370, 0x03FF, "Greek and Coptic"},
	Cyrillic:                                    {0x0400, 0x04FF, "Cyrillic"},
	CyrillicSupplement:                          {0x0500, 0x052F, "Cyrillic Supplement"},
	Armenian:                                    {0x0530, 0x058F, "Armenian"},
	Hebrew:                                      {0x0590, 0x05FF, "Hebrew"},
	Arabic:                                      {0x0600, 0x06FF, "Arabic"},
	Syriac:                                      {0x0700, 0x074F, "Syriac"},
	ArabicSupplement:                            {0x0750, 0x077F, "Arabic Supplement"},
	Thaana:                                      {0x0780, 0x07BF, "Thaana"},
	NKo:                                         {0x07C0, 0x07FF, "NKo"},
	Samaritan:                                   {0x0800, 0x083F, "Samaritan"},
	Mandaic:                                     {0x0840, 0x085F, "Mandaic"},
	SyriacSupplement:                            {0x0860, 0x086F, "Syriac Supplement"},
	ArabicExtendedB:                             {0x0870, 0x089F, "Arabic Extended-B"},
	ArabicExtendedA:                             {0x08A0, 0x08FF, "Arabic Extended-A"},
	Devanagari:                                  {0x0900, 0x097F, "Devanagari"},
	Bengali:                                     {0x0980, 0x09FF, "Bengali"},
	Gurmukhi:                                    {0x0A00, 0x0A7F, "Gurmukhi"},
	Gujarati:                                    {0x0A80, 0x0AFF, "Gujarati"},
	Oriya:                                       {0x0B00, 0x0B7F, "Oriya"},
	Tamil:                                       {0x0B80, 0x0BFF, "Tamil"},
	Telugu:                                      {0x0C00, 0x0C7F, "Telugu"},
	Kannada:                                     {0x0C80, 0x0CFF, "Kannada"},
	Malayalam:                                   {0x0D00, 0x0D7F, "Malayalam"},
	Sinhala:                                     {0x0D80, 0x0DFF, "Sinhala"},
	Thai:                                        {0x0E00, 0x0E7F, "Thai"},
	Lao:                                         {0x0E80, 0x0EFF, "Lao"},
	Tibetan:                                     {0x0F00, 0x0FFF, "Tibetan"},
	Myanmar:                                     {0x1000, 0x109F, "Myanmar"},
	Georgian:                                    {0x10A0, 0x10FF, "Georgian"},
	HangulJamo:                                  {0x1100, 0x11FF, "Hangul Jamo"},
	Ethiopic:                                    {0x1200, 0x137F, "Ethiopic"},
	EthiopicSupplement:                          {0x1380, 0x139F, "Ethiopic Supplement"},
	Cherokee:                                    {0x13A0, 0x13FF, "Cherokee"},
	UnifiedCanadianAboriginalSyllabics:          {0x1400, 0x167F, "Unified Canadian Aboriginal Syllabics"},
	Ogham:                                       {0x1680, 0x169F, "Ogham"},
	Runic:                                       {0x16A0, 0x16FF, "Runic"},
	Tagalog:                                     {0x1700, 0x171F, "Tagalog"},
	Hanunoo:                                     {0x1720, 0x173F, "Hanunoo"},
	Buhid:                                       {0x1740, 0x175F, "Buhid"},
	Tagbanwa:                                    {0x1760, 0x177F, "Tagbanwa"},
	Khmer:                                       {0x1780, 0x17FF, "Khmer"},
	Mongolian:                                   {0x1800, 0x18AF, "Mongolian"},
	UnifiedCanadianAboriginalSyllabicsExtended:  {0x18B0, 0x18FF, "Unified Canadian Aboriginal Syllabics Extended"},
	Limbu:                                       {0x1900, 0x194F, "Limbu"},
	TaiLe:                                       {0x1950, 0x197F, "Tai Le"},
	NewTaiLue:                                   {0x1980, 0x19DF, "New Tai Lue"},
	KhmerSymbols:                                {0x19E0, 0x19FF, "Khmer Symbols"},
	Buginese:                                    {0x1A00, 0x1A1F, "Buginese"},
	TaiTham:                                     {0x1A20, 0x1AAF, "Tai Tham"},
	CombiningDiacriticalMarksExtended:           {0x1AB0, 0x1AFF, "Combining Diacritical Marks Extended"},
	Balinese:                                    {0x1B00, 0x1B7F, "Balinese"},
	Sundanese:                                   {0x1B80, 0x1BBF, "Sundanese"},
	Batak:                                       {0x1BC0, 0x1BFF, "Batak"},
	Lepcha:                                      {0x1C00, 0x1C4F, "Lepcha"},
	OlChiki:                                     {0x1C50, 0x1C7F, "Ol Chiki"},
	CyrillicExtendedC:                           {0x1C80, 0x1C8F, "Cyrillic Extended-C"},
	GeorgianExtended:                            {0x1C90, 0x1CBF, "Georgian Extended"},
	SundaneseSupplement:                         {0x1CC0, 0x1CCF, "Sundanese Supplement"},
	VedicExtensions:                             {0x1CD0, 0x1CFF, "Vedic Extensions"},
	PhoneticExtensions:                          {0x1D00, 0x1D7F, "Phonetic Extensions"},
	PhoneticExtensionsSupplement:                {0x1D80, 0x1DBF, "Phonetic Extensions Supplement"},
	CombiningDiacriticalMarksSupplement:         {0x1DC0, 0x1DFF, "Combining Diacritical Marks Supplement"},
	LatinExtendedAdditional:                     {0x1E00, 0x1EFF, "Latin Extended Additional"},
	GreekExtended:                               {0x1F00, 0x1FFF, "Greek Extended"},
	GeneralPunctuation:                          {0x2000, 0x206F, "General Punctuation"},
	SuperscriptsAndSubscripts:                   {0x2070, 0x209F, "Superscripts and Subscripts"},
	CurrencySymbols:                             {0x20A0, 0x20CF, "Currency Symbols"},
	CombiningDiacriticalMarksForSymbols:         {0x20D0, 0x20FF, "Combining Diacritical Marks for Symbols"},
	LetterlikeSymbols:                           {0x2100, 0x214F, "Letterlike Symbols"},
	NumberForms:                                 {0x2150, 0x218F, "Number Forms"},
	Arrows:                                      {0x2190, 0x21FF, "Arrows"},
	MathematicalOperators:                       {0x2200, 0x22FF, "Mathematical Operators"},
	MiscellaneousTechnical:                      {0x2300, 0x23FF, "Miscellaneous Technical"},
	ControlPictures:                             {0x2400, 0x243F, "Control Pictures"},
	OpticalCharacterRecognition:                 {0x2440, 0x245F, "Optical Character Recognition"},
	EnclosedAlphanumerics:                       {0x2460, 0x24FF, "Enclosed Alphanumerics"},
	BoxDrawing:                                  {0x2500, 0x257F, "Box Drawing"},
	BlockElements:                               {0x2580, 0x259F, "Block Elements"},
	GeometricShapes:                             {0x25A0, 0x25FF, "Geometric Shapes"},
	MiscellaneousSymbols:                        {0x2600, 0x26FF, "Miscellaneous Symbols"},
	Dingbats:                                    {0x2700, 0x27BF, "Dingbats"},
	MiscellaneousMathematicalSymbolsA:           {0x27C0, 0x27EF, "Miscellaneous Mathematical Symbols-A"},
	SupplementalArrowsA:                         {0x27F0, 0x27FF, "Supplemental Arrows-A"},
	BraillePatterns:                             {0x2800, 0x28FF, "Braille Patterns"},
	SupplementalArrowsB:                         {0x2900, 0x297F, "Supplemental Arrows-B"},
	MiscellaneousMathematicalSymbolsB:           {0x2980, 0x29FF, "Miscellaneous Mathematical Symbols-B"},
	SupplementalMathematicalOperators:           {0x2A00, 0x2AFF, "Supplemental Mathematical Operators"},
	MiscellaneousSymbolsAndArrows:               {0x2B00, 0x2BFF, "Miscellaneous Symbols and Arrows"},
	Glagolitic:                                  {0x2C00, 0x2C5F, "Glagolitic"},
	LatinExtendedC:                              {0x2C60, 0x2C7F, "Latin Extended-C"},
	Coptic:                                      {0x2C80, 0x2CFF, "Coptic"},
	GeorgianSupplement:                          {0x2D00, 0x2D2F, "Georgian Supplement"},
	Tifinagh:                                    {0x2D30, 0x2D7F, "Tifinagh"},
	EthiopicExtended:                            {0x2D80, 0x2DDF, "Ethiopic Extended"},
	CyrillicExtendedA:                           {0x2DE0, 0x2DFF, "Cyrillic Extended-A"},
	SupplementalPunctuation:                     {0x2E00, 0x2E7F, "Supplemental Punctuation"},
	CJKRadicalsSupplement:                       {0x2E80, 0x2EFF, "CJK Radicals Supplement"},
	KangxiRadicals:                              {0x2F00, 0x2FDF, "Kangxi Radicals"},
	IdeographicDescriptionCharacters:            {0x2FF0, 0x2FFF, "Ideographic Description Characters"},
	CJKSymbolsAndPunctuation:                    {0x3000, 0x303F, "CJK Symbols and Punctuation"},
	Hiragana:                                    {0x3040, 0x309F, "Hiragana"},
	Katakana:                                    {0x30A0, 0x30FF, "Katakana"},
	Bopomofo:                                    {0x3100, 0x312F, "Bopomofo"},
	HangulCompatibilityJamo:                     {0x3130, 0x318F, "Hangul Compatibility Jamo"},
	Kanbun:                                      {0x3190, 0x319F, "Kanbun"},
	BopomofoExtended:                            {0x31A0, 0x31BF, "Bopomofo Extended"},
	CJKStrokes:                                  {0x31C0, 0x31EF, "CJK Strokes"},
	KatakanaPhoneticExtensions:                  {0x31F0, 0x31FF, "Katakana Phonetic Extensions"},
	EnclosedCJKLettersAndMonths:                 {0x3200, 0x32FF, "Enclosed CJK Letters and Months"},
	CJKCompatibility:                            {0x3300, 0x33FF, "CJK Compatibility"},
	CJKUnifiedIdeographsExtensionA:              {0x3400, 0x4DBF, "CJK Unified Ideographs Extension A"},
	YijingHexagramSymbols:                       {0x4DC0, 0x4DFF, "Yijing Hexagram Symbols"},
	CJKUnifiedIdeographs:                        {0x4E00, 0x9FFF, "CJK Unified Ideographs"},
	YiSyllables:                                 {0xA000, 0xA48F, "Yi Syllables"},
	YiRadicals:                                  {0xA490, 0xA4CF, "Yi Radicals"},
	Lisu:                                        {0xA4D0, 0xA4FF, "Lisu"},
	Vai:                                         {0xA500, 0xA63F, "Vai"},
	CyrillicExtendedB:                           {0xA640, 0xA69F, "Cyrillic Extended-B"},
	Bamum:                                       {0xA6A0, 0xA6FF, "Bamum"},
	ModifierToneLetters:                         {0xA700, 0xA71F, "Modifier Tone Letters"},
	LatinExtendedD:                              {0xA720, 0xA7FF, "Latin Extended-D"},
	SylotiNagri:                                 {0xA800, 0xA82F, "Syloti Nagri"},
	CommonIndicNumberForms:                      {0xA830, 0xA83F, "Common Indic Number Forms"},
	PhagsPa:                                     {0xA840, 0xA87F, "Phags-pa"},
	Saurashtra:                                  {0xA880, 0xA8DF, "Saurashtra"},
	DevanagariExtended:                          {0xA8E0, 0xA8FF, "Devanagari Extended"},
	KayahLi:                                     {0xA900, 0xA92F, "Kayah Li"},
	Rejang:                                      {0xA930, 0xA95F, "Rejang"},
	HangulJamoExtendedA:                         {0xA960, 0xA97F, "Hangul Jamo Extended-A"},
	Javanese:                                    {0xA980, 0xA9DF, "Javanese"},
	MyanmarExtendedB:                            {0xA9E0, 0xA9FF, "Myanmar Extended-B"},
	Cham:                                        {0xAA00, 0xAA5F, "Cham"},
	MyanmarExtendedA:                            {0xAA60, 0xAA7F, "Myanmar Extended-A"},
	TaiViet:                                     {0xAA80, 0xAADF, "Tai Viet"},
	MeeteiMayekExtensions:                       {0xAAE0, 0xAAFF, "Meetei Mayek Extensions"},
	EthiopicExtendedA:                           {0xAB00, 0xAB2F, "Ethiopic Extended-A"},
	LatinExtendedE:                              {0xAB30, 0xAB6F, "Latin Extended-E"},
	CherokeeSupplement:                          {0xAB70, 0xABBF, "Cherokee Supplement"},
	MeeteiMayek:                                 {0xABC0, 0xABFF, "Meetei Mayek"},
	HangulSyllables:                             {0xAC00, 0xD7AF, "Hangul Syllables"},
	HangulJamoExtendedB:                         {0xD7B0, 0xD7FF, "Hangul Jamo Extended-B"},
	HighSurrogates:                              {0xD800, 0xDB7F, "High Surrogates"},
	HighPrivateUseSurrogates:                    {0xDB80, 0xDBFF, "High Private Use Surrogates"},
	LowSurrogates:                               {0xDC00, 0xDFFF, "Low Surrogates"},
	PrivateUseArea:                              {0xE000, 0xF8FF, "Private Use Area"},
	CJKCompatibilityIdeographs:                  {0xF900, 0xFAFF, "CJK Compatibility Ideographs"},
	AlphabeticPresentationForms:                 {0xFB00, 0xFB4F, "Alphabetic Presentation Forms"},
	ArabicPresentationFormsA:                    {0xFB50, 0xFDFF, "Arabic Presentation Forms-A"},
	VariationSelectors:                          {0xFE00, 0xFE0F, "Variation Selectors"},
	VerticalForms:                               {0xFE10, 0xFE1F, "Vertical Forms"},
	CombiningHalfMarks:                          {0xFE20, 0xFE2F, "Combining Half Marks"},
	CJKCompatibilityForms:                       {0xFE30, 0xFE4F, "CJK Compatibility Forms"},
	SmallFormVariants:                           {0xFE50, 0xFE6F, "Small Form Variants"},
	ArabicPresentationFormsB:                    {0xFE70, 0xFEFF, "Arabic Presentation Forms-B"},
	HalfwidthAndFullwidthForms:                  {0xFF00, 0xFFEF, "Halfwidth and Fullwidth Forms"},
	Specials:                                    {0xFFF0, 0xFFFF, "Specials"},
	LinearBSyllabary:                            {0x10000, 0x1007F, "Linear B Syllabary"},
	LinearBIdeograms:                            {0x10080, 0x100FF, "Linear B Ideograms"},
	AegeanNumbers:                               {0x10100, 0x1013F, "Aegean Numbers"},
	AncientGreekNumbers:                         {0x10140, 0x1018F, "Ancient Greek Numbers"},
	AncientSymbols:                              {0x10190, 0x101CF, "Ancient Symbols"},
	PhaistosDisc:                                {0x101D0, 0x101FF, "Phaistos Disc"},
	Lycian:                                      {0x10280, 0x1029F, "Lycian"},
	Carian:                                      {0x102A0, 0x102DF, "Carian"},
	CopticEpactNumbers:                          {0x102E0, 0x102FF, "Coptic Epact Numbers"},
	OldItalic:                                   {0x10300, 0x1032F, "Old Italic"},
	Gothic:                                      {0x10330, 0x1034F, "Gothic"},
	OldPermic:                                   {0x10350, 0x1037F, "Old Permic"},
	Ugaritic:                                    {0x10380, 0x1039F, "Ugaritic"},
	OldPersian:                                  {0x103A0, 0x103DF, "Old Persian"},
	Deseret:                                     {0x10400, 0x1044F, "Deseret"},
	Shavian:                                     {0x10450, 0x1047F, "Shavian"},
	Osmanya:                                     {0x10480, 0x104AF, "Osmanya"},
	Osage:                                       {0x104B0, 0x104FF, "Osage"},
	Elbasan:                                     {0x10500, 0x1052F, "Elbasan"},
	CaucasianAlbanian:                           {0x10530, 0x1056F, "Caucasian Albanian"},
	Vithkuqi:                                    {0x10570, 0x105BF, "Vithkuqi"},
	LinearA:                                     {0x10600, 0x1077F, "Linear A"},
	LatinExtendedF:                              {0x10780, 0x107BF, "Latin Extended-F"},
	CypriotSyllabary:                            {0x10800, 0x1083F, "Cypriot Syllabary"},
	ImperialAramaic:                             {0x10840, 0x1085F, "Imperial Aramaic"},
	Palmyrene:                                   {0x10860, 0x1087F, "Palmyrene"},
	Nabataean:                                   {0x10880, 0x108AF, "Nabataean"},
	Hatran:                                      {0x108E0, 0x108FF, "Hatran"},
	Phoenician:                                  {0x10900, 0x1091F, "Phoenician"},
	Lydian:                                      {0x10920, 0x1093F, "Lydian"},
	MeroiticHieroglyphs:                         {0x10980, 0x1099F, "Meroitic Hieroglyphs"},
	MeroiticCursive:                             {0x109A0, 0x109FF, "Meroitic Cursive"},
	Kharoshthi:                                  {0x10A00, 0x10A5F, "Kharoshthi"},
	OldSouthArabian:                             {0x10A60, 0x10A7F, "Old South Arabian"},
	OldNorthArabian:                             {0x10A80, 0x10A9F, "Old North Arabian"},
	Manichaean:                                  {0x10AC0, 0x10AFF, "Manichaean"},
	Avestan:                                     {0x10B00, 0x10B3F, "Avestan"},
	InscriptionalParthian:                       {0x10B40, 0x10B5F, "Inscriptional Parthian"},
	InscriptionalPahlavi:                        {0x10B60, 0x10B7F, "Inscriptional Pahlavi"},
	PsalterPahlavi:                              {0x10B80, 0x10BAF, "Psalter Pahlavi"},
	OldTurkic:                                   {0x10C00, 0x10C4F, "Old Turkic"},
	OldHungarian:                                {0x10C80, 0x10CFF, "Old Hungarian"},
	HanifiRohingya:                              {0x10D00, 0x10D3F, "Hanifi Rohingya"},
	RumiNumeralSymbols:                          {0x10E60, 0x10E7F, "Rumi Numeral Symbols"},
	Yezidi:                                      {0x10E80, 0x10EBF, "Yezidi"},
	ArabicExtendedC:                             {0x10EC0, 0x10EFF, "Arabic Extended-C"},
	OldSogdian:                                  {0x10F00, 0x10F2F, "Old Sogdian"},
	Sogdian:                                     {0x10F30, 0x10F6F, "Sogdian"},
	OldUyghur:                                   {0x10F70, 0x10FAF, "Old Uyghur"},
	Chorasmian:                                  {0x10FB0, 0x10FDF, "Chorasmian"},
	Elymaic:                                     {0x10FE0, 0x10FFF, "Elymaic"},
	Brahmi:                                      {0x11000, 0x1107F, "Brahmi"},
	Kaithi:                                      {0x11080, 0x110CF, "Kaithi"},
	SoraSompeng:                                 {0x110D0, 0x110FF, "Sora Sompeng"},
	Chakma:                                      {0x11100, 0x1114F, "Chakma"},
	Mahajani:                                    {0x11150, 0x1117F, "Mahajani"},
	Sharada:                                     {0x11180, 0x111DF, "Sharada"},
	SinhalaArchaicNumbers:                       {0x111E0, 0x111FF, "Sinhala Archaic Numbers"},
	Khojki:                                      {0x11200, 0x1124F, "Khojki"},
	Multani:                                     {0x11280, 0x112AF, "Multani"},
	Khudawadi:                                   {0x112B0, 0x112FF, "Khudawadi"},
	Grantha:                                     {0x11300, 0x1137F, "Grantha"},
	Newa:                                        {0x11400, 0x1147F, "Newa"},
	Tirhuta:                                     {0x11480, 0x114DF, "Tirhuta"},
	Siddham:                                     {0x11580, 0x115FF, "Siddham"},
	Modi:                                        {0x11600, 0x1165F, "Modi"},
	MongolianSupplement:                         {0x11660, 0x1167F, "Mongolian Supplement"},
	Takri:                                       {0x11680, 0x116CF, "Takri"},
	Ahom:                                        {0x11700, 0x1174F, "Ahom"},
	Dogra:                                       {0x11800, 0x1184F, "Dogra"},
	WarangCiti:                                  {0x118A0, 0x118FF, "Warang Citi"},
	DivesAkuru:                                  {0x11900, 0x1195F, "Dives Akuru"},
	Nandinagari:                                 {0x119A0, 0x119FF, "Nandinagari"},
	ZanabazarSquare:                             {0x11A00, 0x11A4F, "Zanabazar Square"},
	Soyombo:                                     {0x11A50, 0x11AAF, "Soyombo"},
	UnifiedCanadianAboriginalSyllabicsExtendedA: {0x11AB0, 0x11ABF, "Unified Canadian Aboriginal Syllabics Extended-A"},
	PauCinHau:                                   {0x11AC0, 0x11AFF, "Pau Cin Hau"},
	DevanagariExtendedA:                         {0x11B00, 0x11B5F, "Devanagari Extended-A"},
	Bhaiksuki:                                   {0x11C00, 0x11C6F, "Bhaiksuki"},
	Marchen:                                     {0x11C70, 0x11CBF, "Marchen"},
	MasaramGondi:                                {0x11D00, 0x11D5F, "Masaram Gondi"},
	GunjalaGondi:                                {0x11D60, 0x11DAF, "Gunjala Gondi"},
	Makasar:                                     {0x11EE0, 0x11EFF, "Makasar"},
	Kawi:                                        {0x11F00, 0x11F5F, "Kawi"},
	LisuSupplement:                              {0x11FB0, 0x11FBF, "Lisu Supplement"},
	TamilSupplement:                             {0x11FC0, 0x11FFF, "Tamil Supplement"},
	Cuneiform:                                   {0x12000, 0x123FF, "Cuneiform"},
	CuneiformNumbersAndPunctuation:              {0x12400, 0x1247F, "Cuneiform Numbers and Punctuation"},
	EarlyDynasticCuneiform:                      {0x12480, 0x1254F, "Early Dynastic Cuneiform"},
	CyproMinoan:                                 {0x12F90, 0x12FFF, "Cypro-Minoan"},
	EgyptianHieroglyphs:                         {0x13000, 0x1342F, "Egyptian Hieroglyphs"},
	EgyptianHieroglyphFormatControls:            {0x13430, 0x1345F, "Egyptian Hieroglyph Format Controls"},
	AnatolianHieroglyphs:                        {0x14400, 0x1467F, "Anatolian Hieroglyphs"},
	BamumSupplement:                             {0x16800, 0x16A3F, "Bamum Supplement"},
	Mro:                                         {0x16A40, 0x16A6F, "Mro"},
	Tangsa:                                      {0x16A70, 0x16ACF, "Tangsa"},
	BassaVah:                                    {0x16AD0, 0x16AFF, "Bassa Vah"},
	PahawhHmong:                                 {0x16B00, 0x16B8F, "Pahawh Hmong"},
	Medefaidrin:                                 {0x16E40, 0x16E9F, "Medefaidrin"},
	Miao:                                        {0x16F00, 0x16F9F, "Miao"},
	IdeographicSymbolsAndPunctuation:            {0x16FE0, 0x16FFF, "Ideographic Symbols and Punctuation"},
	Tangut:                                      {0x17000, 0x187FF, "Tangut"},
	TangutComponents:                            {0x18800, 0x18AFF, "Tangut Components"},
	KhitanSmallScript:                           {0x18B00, 0x18CFF, "Khitan Small Script"},
	TangutSupplement:                            {0x18D00, 0x18D7F, "Tangut Supplement"},
	KanaExtendedB:                               {0x1AFF0, 0x1AFFF, "Kana Extended-B"},
	KanaSupplement:                              {0x1B000, 0x1B0FF, "Kana Supplement"},
	KanaExtendedA:                               {0x1B100, 0x1B12F, "Kana Extended-A"},
	SmallKanaExtension:                          {0x1B130, 0x1B16F, "Small Kana Extension"},
	Nushu:                                       {0x1B170, 0x1B2FF, "Nushu"},
	Duployan:                                    {0x1BC00, 0x1BC9F, "Duployan"},
	ShorthandFormatControls:                     {0x1BCA0, 0x1BCAF, "Shorthand Format Controls"},
	ZnamennyMusicalNotation:                     {0x1CF00, 0x1CFCF, "Znamenny Musical Notation"},
	ByzantineMusicalSymbols:                     {0x1D000, 0x1D0FF, "Byzantine Musical Symbols"},
	MusicalSymbols:                              {0x1D100, 0x1D1FF, "Musical Symbols"},
	AncientGreekMusicalNotation:                 {0x1D200, 0x1D24F, "Ancient Greek Musical Notation"},
	KaktovikNumerals:                            {0x1D2C0, 0x1D2DF, "Kaktovik Numerals"},
	MayanNumerals:                               {0x1D2E0, 0x1D2FF, "Mayan Numerals"},
	TaiXuanJingSymbols:                          {0x1D300, 0x1D35F, "Tai Xuan Jing Symbols"},
	CountingRodNumerals:                         {0x1D360, 0x1D37F, "Counting Rod Numerals"},
	MathematicalAlphanumericSymbols:             {0x1D400, 0x1D7FF, "Mathematical Alphanumeric Symbols"},
	SuttonSignWriting:                           {0x1D800, 0x1DAAF, "Sutton SignWriting"},
	LatinExtendedG:                              {0x1DF00, 0x1DFFF, "Latin Extended-G"},
	GlagoliticSupplement:                        {0x1E000, 0x1E02F, "Glagolitic Supplement"},
	CyrillicExtendedD:                           {0x1E030, 0x1E08F, "Cyrillic Extended-D"},
	NyiakengPuachueHmong:                        {0x1E100, 0x1E14F, "Nyiakeng Puachue Hmong"},
	Toto:                                        {0x1E290, 0x1E2BF, "Toto"},
	Wancho:                                      {0x1E2C0, 0x1E2FF, "Wancho"},
	NagMundari:                                  {0x1E4D0, 0x1E4FF, "Nag Mundari"},
	EthiopicExtendedB:                           {0x1E7E0, 0x1E7FF, "Ethiopic Extended-B"},
	MendeKikakui:                                {0x1E800, 0x1E8DF, "Mende Kikakui"},
	Adlam:                                       {0x1E900, 0x1E95F, "Adlam"},
	IndicSiyaqNumbers:                           {0x1EC70, 0x1ECBF, "Indic Siyaq Numbers"},
	OttomanSiyaqNumbers:                         {0x1ED00, 0x1ED4F, "Ottoman Siyaq Numbers"},
	ArabicMathematicalAlphabeticSymbols:         {0x1EE00, 0x1EEFF, "Arabic Mathematical Alphabetic Symbols"},
	MahjongTiles:                                {0x1F000, 0x1F02F, "Mahjong Tiles"},
	DominoTiles:                                 {0x1F030, 0x1F09F, "Domino Tiles"},
	PlayingCards:                                {0x1F0A0, 0x1F0FF, "Playing Cards"},
	EnclosedAlphanumericSupplement:              {0x1F100, 0x1F1FF, "Enclosed Alphanumeric Supplement"},
	EnclosedIdeographicSupplement:               {0x1F200, 0x1F2FF, "Enclosed Ideographic Supplement"},
	MiscellaneousSymbolsAndPictographs:          {0x1F300, 0x1F5FF, "Miscellaneous Symbols and Pictographs"},
	Emoticons:                                   {0x1F600, 0x1F64F, "Emoticons"},
	OrnamentalDingbats:                          {0x1F650, 0x1F67F, "Ornamental Dingbats"},
	TransportAndMapSymbols:                      {0x1F680, 0x1F6FF, "Transport and Map Symbols"},
	AlchemicalSymbols:                           {0x1F700, 0x1F77F, "Alchemical Symbols"},
	GeometricShapesExtended:                     {0x1F780, 0x1F7FF, "Geometric Shapes Extended"},
	SupplementalArrowsC:                         {0x1F800, 0x1F8FF, "Supplemental Arrows-C"},
	SupplementalSymbolsAndPictographs:           {0x1F900, 0x1F9FF, "Supplemental Symbols and Pictographs"},
	ChessSymbols:                                {0x1FA00, 0x1FA6F, "Chess Symbols"},
	SymbolsAndPictographsExtendedA:              {0x1FA70, 0x1FAFF, "Symbols and Pictographs Extended-A"},
	SymbolsForLegacyComputing:                   {0x1FB00, 0x1FBFF, "Symbols for Legacy Computing"},
	CJKUnifiedIdeographsExtensionB:              {0x20000, 0x2A6DF, "CJK Unified Ideographs Extension B"},
	CJKUnifiedIdeographsExtensionC:              {0x2A700, 0x2B73F, "CJK Unified Ideographs Extension C"},
	CJKUnifiedIdeographsExtensionD:              {0x2B740, 0x2B81F, "CJK Unified Ideographs Extension D"},
	CJKUnifiedIdeographsExtensionE:              {0x2B820, 0x2CEAF, "CJK Unified Ideographs Extension E"},
	CJKUnifiedIdeographsExtensionF:              {0x2CEB0, 0x2EBEF, "CJK Unified Ideographs Extension F"},
	CJKCompatibilityIdeographsSupplement:        {0x2F800, 0x2FA1F, "CJK Compatibility Ideographs Supplement"},
	CJKUnifiedIdeographsExtensionG:              {0x30000, 0x3134F, "CJK Unified Ideographs Extension G"},
	CJKUnifiedIdeographsExtensionH:              {0x31350, 0x323AF, "CJK Unified Ideographs Extension H"},
	Tags:                                        {0xE0000, 0xE007F, "Tags"},
	VariationSelectorsSupplement:                {0xE0100, 0xE01EF, "Variation Selectors Supplement"},
	SupplementaryPrivateUseAreaA:                {0xF0000, 0xFFFFF, "Supplementary Private Use Area-A"},
	SupplementaryPrivateUseAreaB:                {0x100000, 0x10FFFF, "Supplementary Private Use Area-B"},
}
