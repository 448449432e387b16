package book

// ToVO converts an entity into its view object. The returned VO has no links.
func ToVO(b *Book) (BookVO, error) {
	if b == nil {
		return BookVO{}, &MappingError{Source: "Book", Target: "BookVO"}
	}
	return toVO(*b), nil
}

// ToEntity converts a view object into an entity. Links are dropped.
func ToEntity(vo *BookVO) (Book, error) {
	if vo == nil {
		return Book{}, &MappingError{Source: "BookVO", Target: "Book"}
	}
	return toEntity(*vo), nil
}

// ToVOList converts entities element-wise, keeping order and length.
func ToVOList(books []Book) []BookVO {
	out := make([]BookVO, 0, len(books))
	for _, b := range books {
		out = append(out, toVO(b))
	}
	return out
}

// ToEntityList converts view objects element-wise, keeping order and length.
func ToEntityList(vos []BookVO) []Book {
	out := make([]Book, 0, len(vos))
	for _, vo := range vos {
		out = append(out, toEntity(vo))
	}
	return out
}

func toVO(b Book) BookVO {
	return BookVO{
		Key:        b.ID,
		Title:      b.Title,
		Author:     b.Author,
		Price:      b.Price,
		LaunchDate: b.LaunchDate,
		Links:      Links{},
	}
}

func toEntity(vo BookVO) Book {
	return Book{
		ID:         vo.Key,
		Title:      vo.Title,
		Author:     vo.Author,
		Price:      vo.Price,
		LaunchDate: vo.LaunchDate,
	}
}
