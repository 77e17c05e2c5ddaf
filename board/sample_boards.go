package board

var (
	// AnttBoard is the little two-row board everyone starts with.
	AnttBoard []string
	// AtntBoard swaps two letters of AnttBoard so NO reads down column 2.
	AtntBoard []string
	// RaggedBoard has a short second row.
	RaggedBoard []string
	// SchoolBoard is a bigger board with long words in it.
	SchoolBoard []string
)

func init() {
	AnttBoard = []string{
		"ANTT",
		"XSOB",
	}
	AtntBoard = []string{
		"ATNT",
		"XSOB",
	}
	RaggedBoard = []string{
		"BCGT",
		"ABC",
	}
	SchoolBoard = []string{
		"EFJAJCOWSS",
		"SDGKSRFDFF",
		"ASRJDUSKLK",
		"HOEFLOAJDS",
		"TRAILINGXP",
		"DRUDGERYKL",
		"AETVPHOEGA",
		"TCHOOLQEAN",
		"EMAERUSTRE",
		"MARKETAZUT",
	}
}
