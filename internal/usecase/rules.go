package usecase

import "github.com/cardlens/backend/internal/domain"

// RulesVersion identifies the keyword tables below. Bump it on any data change
// so catalog diffs can be traced back to a rules revision.
const RulesVersion = "2025.1"

// KeywordRule maps a keyword set to a category
type KeywordRule struct {
	Category domain.Category
	Keywords []string
}

// BrandRule maps a brand keyword to the merchant label shown to users
type BrandRule struct {
	Keyword string
	Label   string
}

// TargetRule yields Label when any keyword matches, or when all of AllOf match
type TargetRule struct {
	AnyOf []string
	AllOf []string
	Label string
}

// Rules is the ordered, versioned data behind classification and target extraction.
// All keywords are lowercase; matching is substring containment over lowercased text.
type Rules struct {
	Version string

	// Categories in priority order: the first rule with a hit wins
	Categories []KeywordRule

	Brands          []BrandRule
	CategoryTargets map[domain.Category]string // checked right after brands
	GenericTargets  []TargetRule
	DefaultTargets  map[domain.Category]string
}

// DefaultRules returns the built-in rule tables.
//
// Note that "kt" in the telecom set also matches "ktx", so rail benefits
// mentioning KTX classify as telecom. Kept for snapshot compatibility.
func DefaultRules() *Rules {
	return &Rules{
		Version: RulesVersion,
		Categories: []KeywordRule{
			{domain.CategoryCoffee, []string{"스타벅스", "투썸", "이디야", "메가커피", "커피", "카페"}},
			{domain.CategoryStreaming, []string{"넷플릭스", "유튜브", "디즈니", "티빙", "웨이브", "ott", "디지털콘텐츠"}},
			{domain.CategoryMovies, []string{"cgv", "롯데시네마", "메가박스", "영화"}},
			{domain.CategoryDelivery, []string{"배달의민족", "배민", "쿠팡이츠", "요기요", "배달앱"}},
			{domain.CategoryTelecom, []string{"통신", "skt", "kt", "lg u+", "이동통신", "휴대폰", "인터넷요금"}},
			{domain.CategoryShopping, []string{"쿠팡", "네이버", "ssg", "g마켓", "옥션", "11번가", "온라인쇼핑", "쇼핑몰", "마트", "이마트", "롯데마트", "편의점"}},
			{domain.CategoryFuel, []string{"주유", "sk에너지", "gs칼텍스", "s-oil", "오일뱅크"}},
			{domain.CategoryTransit, []string{"대중교통", "버스", "지하철", "택시", "ktx", "고속버스", "철도"}},
			{domain.CategoryAirMileage, []string{"마일리지", "스카이패스", "항공", "라운지", "아시아나", "대한항공", "마일"}},
			{domain.CategoryOverseas, []string{"해외"}},
			{domain.CategoryEducation, []string{"학원", "교육", "인터넷강의", "학습"}},
			{domain.CategoryMedical, []string{"병원", "의료", "약국", "동물병원"}},
			{domain.CategoryUtilities, []string{"관리비", "아파트"}},
		},
		Brands: []BrandRule{
			{"스타벅스", "스타벅스"},
			{"투썸", "투썸"},
			{"이디야", "이디야"},
			{"메가커피", "메가커피"},
			{"넷플릭스", "넷플릭스"},
			{"유튜브", "유튜브 프리미엄"},
			{"디즈니", "디즈니+"},
			{"티빙", "티빙"},
			{"cgv", "CGV"},
			{"롯데시네마", "롯데시네마"},
			{"메가박스", "메가박스"},
			{"배달의민족", "배달의민족"},
			{"배민", "배달의민족"},
			{"쿠팡이츠", "쿠팡이츠"},
			{"요기요", "요기요"},
			{"쿠팡", "쿠팡"},
			{"네이버", "네이버쇼핑"},
			{"ssg", "SSG.COM"},
			{"11번가", "11번가"},
			{"sk에너지", "SK주유"},
			{"gs칼텍스", "GS주유"},
			{"s-oil", "S-OIL"},
			{"스카이패스", "스카이패스"},
		},
		CategoryTargets: map[domain.Category]string{
			domain.CategoryTelecom:  "통신비",
			domain.CategoryFuel:     "주유",
			domain.CategoryOverseas: "해외",
		},
		GenericTargets: []TargetRule{
			{AnyOf: []string{"대중교통"}, AllOf: []string{"버스", "지하철"}, Label: "대중교통"},
			{AnyOf: []string{"택시"}, Label: "택시"},
			{AnyOf: []string{"온라인쇼핑", "온라인"}, Label: "온라인쇼핑"},
			{AnyOf: []string{"편의점"}, Label: "편의점"},
			{AnyOf: []string{"마일리지", "마일"}, Label: "마일리지"},
			{AnyOf: []string{"라운지"}, Label: "공항라운지"},
		},
		DefaultTargets: map[domain.Category]string{
			domain.CategoryCoffee:     "커피전문점",
			domain.CategoryTransit:    "대중교통",
			domain.CategoryShopping:   "온라인쇼핑",
			domain.CategoryTelecom:    "통신비",
			domain.CategoryFuel:       "주유",
			domain.CategoryMovies:     "영화관",
			domain.CategoryAirMileage: "마일리지",
		},
	}
}

// PretagRules is the crawler's coarse first-pass tagging table.
// Matched case-sensitively against "title comment info".
func PretagRules() []KeywordRule {
	return []KeywordRule{
		{domain.CategoryCoffee, []string{"스타벅스", "커피", "카페", "투썸", "이디야", "메가커피"}},
		{domain.CategoryTransit, []string{"교통", "버스", "지하철", "택시", "대중교통"}},
		{domain.CategoryFuel, []string{"주유", "SK", "GS", "S-OIL", "현대오일뱅크", "정유"}},
		{domain.CategoryShopping, []string{"쇼핑", "백화점", "마트", "이마트", "홈플러스", "쿠팡", "SSG", "온라인몰"}},
		{domain.CategoryConvenience, []string{"편의점", "CU", "GS25", "세븐일레븐", "이마트24"}},
		{domain.CategoryTelecom, []string{"통신", "SKT", "KT", "LG U+", "휴대폰", "이동통신"}},
		{domain.CategoryMovies, []string{"영화", "CGV", "메가박스", "롯데시네마"}},
		{domain.CategoryDelivery, []string{"배달", "요기요", "배민"}},
		{domain.CategoryAirMileage, []string{"항공", "마일리지", "대한항공", "아시아나", "스카이패스"}},
		{domain.CategoryStreaming, []string{"넷플릭스", "유튜브", "웨이브", "왓챠", "디즈니", "OTT"}},
	}
}
