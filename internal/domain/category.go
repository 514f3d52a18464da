package domain

// Category is the closed vocabulary a benefit can be classified into.
// Values are the Korean labels persisted in the catalog and used by the front-end filters.
type Category string

const (
	CategoryCoffee      Category = "커피"
	CategoryTransit     Category = "교통"
	CategoryFuel        Category = "주유"
	CategoryShopping    Category = "쇼핑"
	CategoryConvenience Category = "편의점"
	CategoryTelecom     Category = "통신"
	CategoryMovies      Category = "영화"
	CategoryDelivery    Category = "배달"
	CategoryStreaming   Category = "스트리밍"
	CategoryAirMileage  Category = "항공"
	CategoryOverseas    Category = "해외"
	CategoryEducation   Category = "교육"
	CategoryMedical     Category = "의료"
	CategoryUtilities   Category = "생활"
	CategoryOther       Category = "기타"
)

// AllCategories lists the vocabulary in declaration order.
var AllCategories = []Category{
	CategoryCoffee,
	CategoryTransit,
	CategoryFuel,
	CategoryShopping,
	CategoryConvenience,
	CategoryTelecom,
	CategoryMovies,
	CategoryDelivery,
	CategoryStreaming,
	CategoryAirMileage,
	CategoryOverseas,
	CategoryEducation,
	CategoryMedical,
	CategoryUtilities,
	CategoryOther,
}

var knownCategories = func() map[Category]bool {
	m := make(map[Category]bool, len(AllCategories))
	for _, c := range AllCategories {
		m[c] = true
	}
	return m
}()

// Valid reports whether c belongs to the closed vocabulary. The empty category is not valid.
func (c Category) Valid() bool {
	return knownCategories[c]
}

// ParseCategory converts a free string into a Category.
// Returns false for the empty string and for anything outside the vocabulary.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	if !c.Valid() {
		return "", false
	}
	return c, true
}

func (c Category) String() string {
	return string(c)
}
