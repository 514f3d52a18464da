package usecase

import "github.com/cardlens/backend/internal/domain"

// DefaultMetadataTable returns the built-in card presentation table.
// Deployments can replace it with a metadata file.
func DefaultMetadataTable() *domain.MetadataTable {
	return &domain.MetadataTable{
		Curated: []domain.CuratedMetadata{
			{Name: "삼성카드 taptap O", Colors: domain.ColorPair{Primary: "#e91e63", Secondary: "#f48fb1"}, Tagline: "다양한 혜택을 한 장에!"},
			{Name: "삼성카드 taptap S", Colors: domain.ColorPair{Primary: "#e91e63", Secondary: "#f48fb1"}, Tagline: "스마트한 일상의 시작"},
			{Name: "taptap DIGITAL", Colors: domain.ColorPair{Primary: "#7c4dff", Secondary: "#b388ff"}, Tagline: "디지털 라이프 필수템"},
			{Name: "taptap DRIVE", Colors: domain.ColorPair{Primary: "#0277bd", Secondary: "#4fc3f7"}, Tagline: "드라이버를 위한 스마트 혜택"},
			{Name: "taptap SHOPPING", Colors: domain.ColorPair{Primary: "#ff5722", Secondary: "#ff8a65"}, Tagline: "쇼핑의 즐거움을 더하다"},
			{Name: "삼성페이 삼성카드 taptap", Colors: domain.ColorPair{Primary: "#e91e63", Secondary: "#f48fb1"}, Tagline: "삼성페이와 함께하는 혜택"},
			{Name: "네이버페이 taptap", Colors: domain.ColorPair{Primary: "#03c75a", Secondary: "#00e676"}, Tagline: "네이버와 함께하는 스마트 페이"},
			{Name: "CU·배달의민족 삼성카드 taptap", Colors: domain.ColorPair{Primary: "#3bb7c8", Secondary: "#81d4fa"}, Tagline: "편의점과 배달의 꿀조합"},
			{Name: "삼성 iD SELECT ALL 카드", Colors: domain.ColorPair{Primary: "#1428a0", Secondary: "#2d4de0"}, Tagline: "선택이 곧 혜택"},
			{Name: "삼성 iD SELECT ON 카드", Colors: domain.ColorPair{Primary: "#1428a0", Secondary: "#2d4de0"}, Tagline: "나만의 혜택을 선택하다"},
			{Name: "삼성 iD SIMPLE 카드", Colors: domain.ColorPair{Primary: "#333333", Secondary: "#666666"}, Tagline: "심플하게, 알차게"},
			{Name: "삼성 iD ENERGY 카드", Colors: domain.ColorPair{Primary: "#f57c00", Secondary: "#ffb74d"}, Tagline: "에너지 넘치는 혜택"},
			{Name: "삼성 iD ON 카드", Colors: domain.ColorPair{Primary: "#5c6bc0", Secondary: "#9fa8da"}, Tagline: "언제나 켜져있는 혜택"},
			{Name: "삼성 iD PLUG-IN 카드", Colors: domain.ColorPair{Primary: "#26a69a", Secondary: "#80cbc4"}, Tagline: "일상에 혜택을 플러그인"},
			{Name: "삼성 iD ALL 카드", Colors: domain.ColorPair{Primary: "#1428a0", Secondary: "#2d4de0"}, Tagline: "모든 혜택을 한 장에"},
			{Name: "삼성 iD GLOBAL 카드", Colors: domain.ColorPair{Primary: "#1e3a5f", Secondary: "#3d5a80"}, Tagline: "해외에서 빛나는 혜택"},
			{Name: "삼성 iD VITA 카드", Colors: domain.ColorPair{Primary: "#ec407a", Secondary: "#f48fb1"}, Tagline: "건강한 라이프 파트너"},
			{Name: "삼성 iD PET 카드", Colors: domain.ColorPair{Primary: "#8d6e63", Secondary: "#bcaaa4"}, Tagline: "반려동물과 함께하는 혜택"},
			{Name: "삼성 iD ONE 카드", Colors: domain.ColorPair{Primary: "#1428a0", Secondary: "#2d4de0"}, Tagline: "하나로 충분한 혜택"},
			{Name: "삼성 iD STATION 카드 (GS칼텍스)", Colors: domain.ColorPair{Primary: "#ff6f00", Secondary: "#ffab40"}, Tagline: "주유할 때마다 스마트하게"},
			{Name: "삼성 iD STATION 카드 (SK에너지)", Colors: domain.ColorPair{Primary: "#d32f2f", Secondary: "#ef5350"}, Tagline: "SK와 함께하는 주유 혜택"},
			{Name: "삼성 iD NOMAD 카드", Colors: domain.ColorPair{Primary: "#00897b", Secondary: "#4db6ac"}, Tagline: "자유로운 라이프를 위한 카드"},
			{Name: "모니모카드", Colors: domain.ColorPair{Primary: "#0096d6", Secondary: "#00c3ff"}, Tagline: "모이는 금융 커지는 혜택"},
			{Name: "모니모A 카드", Colors: domain.ColorPair{Primary: "#00bcd4", Secondary: "#4dd0e1"}, Tagline: "모니모로 시작하는 금융"},
			{Name: "THE iD. PLATINUM (포인트)", Colors: domain.ColorPair{Primary: "#424242", Secondary: "#757575"}, Tagline: "프리미엄 라이프의 시작"},
			{Name: "THE iD. 1st", Colors: domain.ColorPair{Primary: "#212121", Secondary: "#424242"}, Tagline: "최고를 위한 선택"},
			{Name: "THE 1 (스카이패스)", Colors: domain.ColorPair{Primary: "#1a237e", Secondary: "#3949ab"}, Tagline: "여행의 품격을 높이다"},
			{Name: "BIZ THE iD. PLATINUM (포인트)", Colors: domain.ColorPair{Primary: "#37474f", Secondary: "#607d8b"}, Tagline: "비즈니스 프리미엄 파트너"},
			{Name: "아메리칸 엑스프레스 블루", Colors: domain.ColorPair{Primary: "#006fcf", Secondary: "#00a1e4"}, Tagline: "글로벌 프리미엄 혜택"},
			{Name: "아메리칸 엑스프레스 리저브", Colors: domain.ColorPair{Primary: "#1a1a1a", Secondary: "#4a4a4a"}, Tagline: "럭셔리 라이프의 정수"},
			{Name: "삼성카드 & MILEAGE PLATINUM (스카이패스)", Colors: domain.ColorPair{Primary: "#0d47a1", Secondary: "#1976d2"}, Tagline: "하늘을 향한 마일리지"},
			{Name: "삼성카드 스페셜마일리지 (스카이패스)", Colors: domain.ColorPair{Primary: "#1565c0", Secondary: "#42a5f5"}, Tagline: "특별한 마일리지 적립"},
			{Name: "신세계이마트 삼성카드 7", Colors: domain.ColorPair{Primary: "#fbc02d", Secondary: "#fff176"}, Tagline: "장보기가 즐거워지는 혜택"},
			{Name: "트레이더스 신세계 삼성카드", Colors: domain.ColorPair{Primary: "#f9a825", Secondary: "#ffee58"}, Tagline: "대용량 쇼핑의 스마트 파트너"},
			{Name: "이마트신세계 삼성카드", Colors: domain.ColorPair{Primary: "#fdd835", Secondary: "#fff59d"}, Tagline: "쇼핑 라이프의 필수 카드"},
			{Name: "하나투어 삼성카드", Colors: domain.ColorPair{Primary: "#0288d1", Secondary: "#4fc3f7"}, Tagline: "여행의 시작과 끝"},
			{Name: "롯데월드카드 (삼성카드)", Colors: domain.ColorPair{Primary: "#e53935", Secondary: "#ef5350"}, Tagline: "놀이동산이 즐거워지는 카드"},
			{Name: "에버랜드 삼성카드", Colors: domain.ColorPair{Primary: "#43a047", Secondary: "#81c784"}, Tagline: "에버랜드와 함께하는 즐거움"},
			{Name: "알라딘 만권당 삼성카드", Colors: domain.ColorPair{Primary: "#5d4037", Secondary: "#8d6e63"}, Tagline: "책과 함께하는 지적 라이프"},
			{Name: "다이소 삼성카드", Colors: domain.ColorPair{Primary: "#ff7043", Secondary: "#ffab91"}, Tagline: "알뜰 쇼핑의 필수템"},
			{Name: "KTX 삼성카드", Colors: domain.ColorPair{Primary: "#ff5722", Secondary: "#ff8a65"}, Tagline: "빠른 이동, 빠른 혜택"},
			{Name: "K-패스 삼성카드", Colors: domain.ColorPair{Primary: "#00acc1", Secondary: "#4dd0e1"}, Tagline: "대중교통 필수 동반자"},
			{Name: "기후동행 삼성카드", Colors: domain.ColorPair{Primary: "#66bb6a", Secondary: "#a5d6a7"}, Tagline: "친환경 교통의 시작"},
			{Name: "단비교육 삼성카드", Colors: domain.ColorPair{Primary: "#7cb342", Secondary: "#aed581"}, Tagline: "아이 교육의 든든한 파트너"},
			{Name: "엠베스트 엘리하이 삼성카드", Colors: domain.ColorPair{Primary: "#ff9800", Secondary: "#ffcc80"}, Tagline: "자녀 학습을 위한 스마트 선택"},
			{Name: "삼성카드 BIZ LEADERS", Colors: domain.ColorPair{Primary: "#37474f", Secondary: "#78909c"}, Tagline: "비즈니스 리더를 위한 카드"},
			{Name: "삼성 BIZ iD BENEFIT 카드", Colors: domain.ColorPair{Primary: "#455a64", Secondary: "#90a4ae"}, Tagline: "사업자를 위한 맞춤 혜택"},
			{Name: "MY S-OIL 삼성카드", Colors: domain.ColorPair{Primary: "#ffc107", Secondary: "#ffe082"}, Tagline: "주유가 즐거워지는 카드"},
			{Name: "삼성카앤모아카드", Colors: domain.ColorPair{Primary: "#546e7a", Secondary: "#90a4ae"}, Tagline: "차량 생활의 모든 것"},
			{Name: "국민행복 삼성카드 V2", Colors: domain.ColorPair{Primary: "#4caf50", Secondary: "#81c784"}, Tagline: "국민과 함께하는 행복 혜택"},
		},
		KeywordColors: []domain.KeywordColors{
			{Keyword: "주유", Colors: domain.ColorPair{Primary: "#ff6f00", Secondary: "#ffab40"}},
			{Keyword: "DRIVE", Colors: domain.ColorPair{Primary: "#0277bd", Secondary: "#4fc3f7"}},
			{Keyword: "교통", Colors: domain.ColorPair{Primary: "#00acc1", Secondary: "#4dd0e1"}},
			{Keyword: "쇼핑", Colors: domain.ColorPair{Primary: "#ff5722", Secondary: "#ff8a65"}},
			{Keyword: "커피", Colors: domain.ColorPair{Primary: "#6d4c41", Secondary: "#a1887f"}},
			{Keyword: "스트리밍", Colors: domain.ColorPair{Primary: "#7c4dff", Secondary: "#b388ff"}},
			{Keyword: "DIGITAL", Colors: domain.ColorPair{Primary: "#7c4dff", Secondary: "#b388ff"}},
			{Keyword: "항공", Colors: domain.ColorPair{Primary: "#0d47a1", Secondary: "#1976d2"}},
			{Keyword: "마일리지", Colors: domain.ColorPair{Primary: "#1565c0", Secondary: "#42a5f5"}},
			{Keyword: "PLATINUM", Colors: domain.ColorPair{Primary: "#424242", Secondary: "#757575"}},
			{Keyword: "GLOBAL", Colors: domain.ColorPair{Primary: "#1e3a5f", Secondary: "#3d5a80"}},
			{Keyword: "BIZ", Colors: domain.ColorPair{Primary: "#37474f", Secondary: "#78909c"}},
			{Keyword: "PET", Colors: domain.ColorPair{Primary: "#8d6e63", Secondary: "#bcaaa4"}},
			{Keyword: "VITA", Colors: domain.ColorPair{Primary: "#ec407a", Secondary: "#f48fb1"}},
		},
		KeywordTaglines: []domain.KeywordTagline{
			{Keyword: "SELECT", Tagline: "나에게 맞는 혜택 선택"},
			{Keyword: "주유", Tagline: "주유할 때마다 스마트하게"},
			{Keyword: "DRIVE", Tagline: "드라이버를 위한 스마트 혜택"},
			{Keyword: "교통", Tagline: "이동이 즐거워지는 혜택"},
			{Keyword: "쇼핑", Tagline: "쇼핑의 즐거움을 더하다"},
			{Keyword: "커피", Tagline: "커피 한 잔의 여유와 함께"},
			{Keyword: "스트리밍", Tagline: "디지털 라이프의 필수템"},
			{Keyword: "DIGITAL", Tagline: "디지털 라이프를 위한 선택"},
			{Keyword: "항공", Tagline: "하늘을 향한 혜택"},
			{Keyword: "마일리지", Tagline: "마일리지가 모이는 카드"},
			{Keyword: "MILEAGE", Tagline: "마일리지가 모이는 카드"},
			{Keyword: "PLATINUM", Tagline: "프리미엄 라이프를 위한 선택"},
			{Keyword: "GLOBAL", Tagline: "해외에서 빛나는 혜택"},
			{Keyword: "BIZ", Tagline: "비즈니스를 위한 스마트 파트너"},
			{Keyword: "PET", Tagline: "반려동물과 함께하는 혜택"},
			{Keyword: "VITA", Tagline: "건강한 라이프 파트너"},
			{Keyword: "ENERGY", Tagline: "에너지 넘치는 일상"},
			{Keyword: "SIMPLE", Tagline: "심플하게, 알차게"},
			{Keyword: "모니모", Tagline: "모이는 금융, 커지는 혜택"},
			{Keyword: "taptap", Tagline: "스마트한 일상의 시작"},
			{Keyword: "신세계", Tagline: "쇼핑이 즐거워지는 카드"},
			{Keyword: "이마트", Tagline: "장보기의 필수 파트너"},
			{Keyword: "롯데", Tagline: "즐거움이 가득한 카드"},
			{Keyword: "에버랜드", Tagline: "놀이가 즐거워지는 카드"},
			{Keyword: "알라딘", Tagline: "책과 함께하는 라이프"},
			{Keyword: "다이소", Tagline: "알뜰 쇼핑의 필수템"},
			{Keyword: "KTX", Tagline: "빠른 이동, 빠른 혜택"},
			{Keyword: "교육", Tagline: "자녀 교육의 든든한 파트너"},
			{Keyword: "국민행복", Tagline: "국민과 함께하는 행복"},
		},
		DefaultColors:         domain.ColorPair{Primary: "#1428a0", Secondary: "#2d4de0"},
		DefaultTagline:        "일상에 혜택을 더하다",
		VarietyTagline:        "다양한 혜택을 한 장에!",
		CoffeeShoppingTagline: "카페와 쇼핑의 스마트 혜택",
		FuelTagline:           "주유가 즐거워지는 카드",
		AirTagline:            "여행을 위한 마일리지 카드",
	}
}
