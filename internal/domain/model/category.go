package model

// カテゴリ（木構造だが、一覧はフラットに読む）
type Category struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description,omitempty"`
	Image       string     `json:"image,omitempty"`
	ParentID    *string    `json:"parentId,omitempty"`
	Children    []Category `json:"children,omitempty"`
}

// idかslugのどちらかが一致すればtrue
func (c Category) Matches(idOrSlug string) bool {
	return c.ID == idOrSlug || c.Slug == idOrSlug
}
