package db_models

type Book struct {
	BaseModel
	Title       string `gorm:"index;not null"`
	Author      string `gorm:"index;not null"`
	Publisher   string
	ISBN        string `gorm:"uniqueIndex;size:13"`
	Category    string `gorm:"index"`
	Description string `gorm:"type:text"`
	CoverImage  string
	PublishedAt int64

	Reviews []Review `gorm:"foreignKey:BookID"`
}
