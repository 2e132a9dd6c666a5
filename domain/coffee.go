package domain

// CREATE TABLE public.coffees (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name        TEXT,
//     origin      TEXT,
//     roast       TEXT,
//     agtron      TEXT,
//     aroma       TEXT,
//     acid        TEXT,
//     body        TEXT,
//     flavor      TEXT,
//     aftertaste  TEXT,
//     est_price   TEXT,
//     desc_1      TEXT,
//     desc_2      TEXT,
//     desc_3      TEXT
// );

// CoffeeRow is one raw catalog record as it arrives from a source
// (CSV file or database). Sensory fields stay strings because the
// upstream data mixes plain numbers with "num/denom" ratios; the
// recommender cleans and converts them at load time.
type CoffeeRow struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement" csv:"-"`
	Name       string `gorm:"column:name;type:text"`
	Origin     string `gorm:"column:origin;type:text"`
	Roast      string `gorm:"column:roast;type:text"`
	Agtron     string `gorm:"column:agtron;type:text"`
	Aroma      string `gorm:"column:aroma;type:text"`
	Acid       string `gorm:"column:acid;type:text"`
	Body       string `gorm:"column:body;type:text"`
	Flavor     string `gorm:"column:flavor;type:text"`
	Aftertaste string `gorm:"column:aftertaste;type:text"`
	EstPrice   string `gorm:"column:est_price;type:text"`
	Desc1      string `gorm:"column:desc_1;type:text"`
	Desc2      string `gorm:"column:desc_2;type:text"`
	Desc3      string `gorm:"column:desc_3;type:text"`
}

func (CoffeeRow) TableName() string {
	return "coffees"
}
