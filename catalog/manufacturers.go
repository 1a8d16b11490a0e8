package catalog

// DefaultManufacturers is the built-in manufacturer vocabulary used for
// free-text extraction when no catalog could be loaded. Names with a
// space or hyphen are matched as multi-word tokens.
var DefaultManufacturers = []string{
	"gmc", "chevrolet", "toyota", "ford", "jeep", "nissan", "ram",
	"mazda", "cadillac", "honda", "dodge", "lexus", "jaguar", "buick",
	"chrysler", "volvo", "audi", "infiniti", "lincoln", "alfa-romeo",
	"subaru", "acura", "hyundai", "mercedes-benz", "bmw",
	"mitsubishi", "volkswagen", "porsche", "kia", "rover", "ferrari",
	"mini", "pontiac", "fiat", "tesla", "saturn", "mercury",
	"harley-davidson", "datsun", "aston-martin", "land rover",
	"morgan", "genesis", "freightliner", "international", "scion",
	"smart", "isuzu", "maserati",
}

// ApprovedManufacturers is the whitelist applied after
// canonicalization; rows with any other manufacturer are dropped.
var ApprovedManufacturers = []string{
	"acura", "alfa-romeo", "am-general", "amc", "audi", "bentley", "bmw",
	"buick", "cadillac", "chevrolet", "chrysler", "datsun", "dodge",
	"eagle", "edsel", "ferrari", "fiat", "ford", "freightliner",
	"genesis", "geo", "gmc", "hino", "honda", "hyundai", "infiniti",
	"international", "isuzu", "jaguar", "jeep", "kaiser", "kenworth",
	"kia", "lamborghini", "land-rover", "lexus", "lincoln", "lotus",
	"maserati", "mazda", "mclaren", "mercedes-benz", "mercury", "mg",
	"mini", "mitsubishi", "nash", "nissan", "oldsmobile", "packard",
	"peterbilt", "plymouth", "polaris", "pontiac", "porsche", "ram",
	"rolls-royce", "saab", "saturn", "smart", "sterling", "studebaker",
	"subaru", "suzuki", "tesla", "toyota", "triumph", "volkswagen",
	"volvo", "vpg", "western-star", "willys",
}
