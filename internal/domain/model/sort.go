package model

type SortField string

const (
	SortByName      SortField = "name"
	SortByPrice     SortField = "price"
	SortByRating    SortField = "rating"
	SortByCreatedAt SortField = "createdAt"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type ProductSort struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// 初期値は名前の昇順
func DefaultSort() ProductSort {
	return ProductSort{Field: SortByName, Direction: SortAsc}
}

func (s ProductSort) Valid() bool {
	switch s.Field {
	case SortByName, SortByPrice, SortByRating, SortByCreatedAt:
	default:
		return false
	}
	return s.Direction == SortAsc || s.Direction == SortDesc
}

// ParseSort は "price" / "desc" のような文字列から組み立てる。不正ならfalse。
func ParseSort(field, direction string) (ProductSort, bool) {
	s := ProductSort{Field: SortField(field), Direction: SortDirection(direction)}
	if s.Direction == "" {
		s.Direction = SortAsc
	}
	return s, s.Valid()
}
