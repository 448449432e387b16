package book

import (
	"strconv"
	"time"
)

// SampleBook returns a deterministic book for index i. Even indexes cost
// 10.0 and launched in 2022, odd ones cost 11.0 and launched in 2023.
func SampleBook(i int) Book {
	price, year := 10.0, 2022
	if i%2 != 0 {
		price, year = 11.0, 2023
	}
	return Book{
		ID:         int64(i),
		Title:      "Title Test" + strconv.Itoa(i),
		Author:     "Author Test" + strconv.Itoa(i),
		Price:      price,
		LaunchDate: time.Date(year, time.February, 1, 0, 0, 0, 0, time.UTC),
	}
}

// SampleBooks returns SampleBook(0) through SampleBook(n-1).
func SampleBooks(n int) []Book {
	out := make([]Book, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, SampleBook(i))
	}
	return out
}

// SampleVO returns the view object of SampleBook(i).
func SampleVO(i int) BookVO {
	return toVO(SampleBook(i))
}

// SampleVOs returns SampleVO(0) through SampleVO(n-1).
func SampleVOs(n int) []BookVO {
	return ToVOList(SampleBooks(n))
}
