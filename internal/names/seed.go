package names

// builtinCandidates is the curated expansion set merged by `namebank expand`.
// Grouped by theme; order matters only for tie-breaking during the stable sort.
var builtinCandidates = []Record{
	// Popular male names
	{ID: "aiden", Name: "Aiden", Gender: GenderMale, Origins: []string{"irish"}, Styles: []string{"modern", "strong"}, Meaning: "Little fire", Popularity: PopularityPopular},
	{ID: "jackson", Name: "Jackson", Gender: GenderMale, Origins: []string{"english"}, Styles: []string{"modern", "strong"}, Meaning: "Son of Jack", Popularity: PopularityPopular},
	{ID: "logan", Name: "Logan", Gender: GenderMale, Origins: []string{"scottish"}, Styles: []string{"modern", "strong"}, Meaning: "Small hollow", Popularity: PopularityPopular},
	{ID: "lucas", Name: "Lucas", Gender: GenderMale, Origins: []string{"latin"}, Styles: []string{"classic", "modern"}, Meaning: "Light", Popularity: PopularityPopular},
	{ID: "michael", Name: "Michael", Gender: GenderMale, Origins: []string{"hebrew"}, Styles: []string{"classic", "biblical"}, Meaning: "Who is like God", Popularity: PopularityPopular},

	// Popular female names
	{ID: "emma", Name: "Emma", Gender: GenderFemale, Origins: []string{"german"}, Styles: []string{"classic", "vintage"}, Meaning: "Universal", Popularity: PopularityPopular},
	{ID: "olivia", Name: "Olivia", Gender: GenderFemale, Origins: []string{"latin"}, Styles: []string{"classic", "literary"}, Meaning: "Olive tree", Popularity: PopularityPopular},
	{ID: "ava", Name: "Ava", Gender: GenderFemale, Origins: []string{"latin"}, Styles: []string{"modern", "elegant"}, Meaning: "Life", Popularity: PopularityPopular},
	{ID: "sophia", Name: "Sophia", Gender: GenderFemale, Origins: []string{"greek"}, Styles: []string{"classic", "elegant"}, Meaning: "Wisdom", Popularity: PopularityPopular},
	{ID: "isabella", Name: "Isabella", Gender: GenderFemale, Origins: []string{"italian", "spanish"}, Styles: []string{"classic", "royal"}, Meaning: "Devoted to God", Popularity: PopularityPopular},
	{ID: "mia", Name: "Mia", Gender: GenderFemale, Origins: []string{"italian", "scandinavian"}, Styles: []string{"modern", "gentle"}, Meaning: "Mine", Popularity: PopularityPopular},
	{ID: "charlotte", Name: "Charlotte", Gender: GenderFemale, Origins: []string{"french"}, Styles: []string{"classic", "royal"}, Meaning: "Free woman", Popularity: PopularityPopular},
	{ID: "amelia", Name: "Amelia", Gender: GenderFemale, Origins: []string{"german"}, Styles: []string{"classic", "vintage"}, Meaning: "Industrious", Popularity: PopularityPopular},
	{ID: "harper", Name: "Harper", Gender: GenderFemale, Origins: []string{"english"}, Styles: []string{"modern", "literary"}, Meaning: "Harp player", Popularity: PopularityPopular},
	{ID: "evelyn", Name: "Evelyn", Gender: GenderFemale, Origins: []string{"english"}, Styles: []string{"vintage", "elegant"}, Meaning: "Desired", Popularity: PopularityPopular},

	// Nature names
	{ID: "river", Name: "River", Gender: GenderNeutral, Origins: []string{"english"}, Styles: []string{"nature", "modern"}, Meaning: "Flowing water", Popularity: PopularityCommon},
	{ID: "sage", Name: "Sage", Gender: GenderNeutral, Origins: []string{"latin"}, Styles: []string{"nature", "bohemian"}, Meaning: "Wise one", Popularity: PopularityCommon},
	{ID: "willow", Name: "Willow", Gender: GenderFemale, Origins: []string{"english"}, Styles: []string{"nature", "gentle"}, Meaning: "Willow tree", Popularity: PopularityCommon},
	{ID: "aspen", Name: "Aspen", Gender: GenderNeutral, Origins: []string{"english"}, Styles: []string{"nature", "modern"}, Meaning: "Quaking tree", Popularity: PopularityUncommon},
	{ID: "ivy", Name: "Ivy", Gender: GenderFemale, Origins: []string{"english"}, Styles: []string{"nature", "vintage"}, Meaning: "Climbing plant", Popularity: PopularityCommon},
	{ID: "hazel", Name: "Hazel", Gender: GenderFemale, Origins: []string{"english"}, Styles: []string{"nature", "vintage"}, Meaning: "Hazelnut tree", Popularity: PopularityCommon},
	{ID: "jasper", Name: "Jasper", Gender: GenderMale, Origins: []string{"persian"}, Styles: []string{"nature", "vintage"}, Meaning: "Treasurer", Popularity: PopularityUncommon},
	{ID: "rowan", Name: "Rowan", Gender: GenderNeutral, Origins: []string{"irish"}, Styles: []string{"nature", "celtic"}, Meaning: "Little red one", Popularity: PopularityUncommon},
	{ID: "oak", Name: "Oak", Gender: GenderMale, Origins: []string{"english"}, Styles: []string{"nature", "strong"}, Meaning: "Oak tree", Popularity: PopularityRare},
	{ID: "wren", Name: "Wren", Gender: GenderFemale, Origins: []string{"english"}, Styles: []string{"nature", "gentle"}, Meaning: "Small bird", Popularity: PopularityUncommon},

	// International names
	{ID: "santiago", Name: "Santiago", Gender: GenderMale, Origins: []string{"spanish"}, Styles: []string{"classic", "strong"}, Meaning: "Saint James", Popularity: PopularityCommon},
	{ID: "diego", Name: "Diego", Gender: GenderMale, Origins: []string{"spanish"}, Styles: []string{"classic", "strong"}, Meaning: "Supplanter", Popularity: PopularityCommon},
	{ID: "aria", Name: "Aria", Gender: GenderFemale, Origins: []string{"italian"}, Styles: []string{"modern", "artistic"}, Meaning: "Air, melody", Popularity: PopularityPopular},
	{ID: "luna", Name: "Luna", Gender: GenderFemale, Origins: []string{"latin", "spanish"}, Styles: []string{"modern", "mystical"}, Meaning: "Moon", Popularity: PopularityPopular},
	{ID: "kai", Name: "Kai", Gender: GenderNeutral, Origins: []string{"hawaiian", "japanese"}, Styles: []string{"modern", "nature"}, Meaning: "Sea", Popularity: PopularityCommon},
	{ID: "yuki", Name: "Yuki", Gender: GenderNeutral, Origins: []string{"japanese"}, Styles: []string{"modern", "gentle"}, Meaning: "Snow", Popularity: PopularityUncommon},
	{ID: "arjun", Name: "Arjun", Gender: GenderMale, Origins: []string{"indian"}, Styles: []string{"classic", "strong"}, Meaning: "Bright, shining", Popularity: PopularityCommon},
	{ID: "priya", Name: "Priya", Gender: GenderFemale, Origins: []string{"indian"}, Styles: []string{"classic", "gentle"}, Meaning: "Beloved", Popularity: PopularityCommon},
	{ID: "omar", Name: "Omar", Gender: GenderMale, Origins: []string{"arabic"}, Styles: []string{"classic", "strong"}, Meaning: "Flourishing", Popularity: PopularityCommon},
	{ID: "layla", Name: "Layla", Gender: GenderFemale, Origins: []string{"arabic"}, Styles: []string{"classic", "romantic"}, Meaning: "Night", Popularity: PopularityPopular},
	{ID: "zara", Name: "Zara", Gender: GenderFemale, Origins: []string{"arabic"}, Styles: []string{"modern", "elegant"}, Meaning: "Princess", Popularity: PopularityCommon},

	// Vintage and classic names
	{ID: "theodore", Name: "Theodore", Gender: GenderMale, Origins: []string{"greek"}, Styles: []string{"vintage", "classic"}, Meaning: "Gift of God", Popularity: PopularityPopular},
	{ID: "arthur", Name: "Arthur", Gender: GenderMale, Origins: []string{"celtic"}, Styles: []string{"vintage", "royal"}, Meaning: "Bear", Popularity: PopularityCommon},
	{ID: "felix", Name: "Felix", Gender: GenderMale, Origins: []string{"latin"}, Styles: []string{"vintage", "cheerful"}, Meaning: "Happy, fortunate", Popularity: PopularityUncommon},
	{ID: "augustus", Name: "Augustus", Gender: GenderMale, Origins: []string{"latin"}, Styles: []string{"vintage", "royal"}, Meaning: "Great, magnificent", Popularity: PopularityUncommon},
	{ID: "beatrice", Name: "Beatrice", Gender: GenderFemale, Origins: []string{"latin"}, Styles: []string{"vintage", "literary"}, Meaning: "She who brings happiness", Popularity: PopularityUncommon},
	{ID: "clara", Name: "Clara", Gender: GenderFemale, Origins: []string{"latin"}, Styles: []string{"vintage", "classic"}, Meaning: "Bright, clear", Popularity: PopularityCommon},
	{ID: "eleanor", Name: "Eleanor", Gender: GenderFemale, Origins: []string{"french"}, Styles: []string{"vintage", "royal"}, Meaning: "Light", Popularity: PopularityPopular},
	{ID: "josephine", Name: "Josephine", Gender: GenderFemale, Origins: []string{"french"}, Styles: []string{"vintage", "elegant"}, Meaning: "God will increase", Popularity: PopularityCommon},
	{ID: "florence", Name: "Florence", Gender: GenderFemale, Origins: []string{"latin"}, Styles: []string{"vintage", "classic"}, Meaning: "Flourishing", Popularity: PopularityUncommon},
	{ID: "mabel", Name: "Mabel", Gender: GenderFemale, Origins: []string{"latin"}, Styles: []string{"vintage", "gentle"}, Meaning: "Lovable", Popularity: PopularityUncommon},

	// Biblical names
	{ID: "abraham", Name: "Abraham", Gender: GenderMale, Origins: []string{"hebrew"}, Styles: []string{"biblical", "classic"}, Meaning: "Father of multitudes", Popularity: PopularityCommon},
	{ID: "ezekiel", Name: "Ezekiel", Gender: GenderMale, Origins: []string{"hebrew"}, Styles: []string{"biblical", "strong"}, Meaning: "God strengthens", Popularity: PopularityUncommon},
	{ID: "isaiah", Name: "Isaiah", Gender: GenderMale, Origins: []string{"hebrew"}, Styles: []string{"biblical", "strong"}, Meaning: "Salvation of the Lord", Popularity: PopularityPopular},
	{ID: "jeremiah", Name: "Jeremiah", Gender: GenderMale, Origins: []string{"hebrew"}, Styles: []string{"biblical", "strong"}, Meaning: "Appointed by God", Popularity: PopularityCommon},
	{ID: "micah", Name: "Micah", Gender: GenderNeutral, Origins: []string{"hebrew"}, Styles: []string{"biblical", "modern"}, Meaning: "Who is like God", Popularity: PopularityCommon},
	{ID: "sarah", Name: "Sarah", Gender: GenderFemale, Origins: []string{"hebrew"}, Styles: []string{"biblical", "classic"}, Meaning: "Princess", Popularity: PopularityPopular},
	{ID: "rebecca", Name: "Rebecca", Gender: GenderFemale, Origins: []string{"hebrew"}, Styles: []string{"biblical", "classic"}, Meaning: "To bind", Popularity: PopularityCommon},
	{ID: "rachel", Name: "Rachel", Gender: GenderFemale, Origins: []string{"hebrew"}, Styles: []string{"biblical", "classic"}, Meaning: "Ewe", Popularity: PopularityCommon},
	{ID: "leah", Name: "Leah", Gender: GenderFemale, Origins: []string{"hebrew"}, Styles: []string{"biblical", "gentle"}, Meaning: "Weary", Popularity: PopularityCommon},
	{ID: "hannah", Name: "Hannah", Gender: GenderFemale, Origins: []string{"hebrew"}, Styles: []string{"biblical", "classic"}, Meaning: "Grace", Popularity: PopularityPopular},
}

// BuiltinCandidates returns a copy of the curated expansion set.
func BuiltinCandidates() []Record {
	return append([]Record(nil), builtinCandidates...)
}
