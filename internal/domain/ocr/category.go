package ocr

import "strings"

// Expense category names match the seeded system categories in the mobile
// app; keys are matched as lowercase substrings of merchant + item text.
var categoryKeywords = []struct {
	name     string
	keywords []string
}{
	{"Makanan & Minuman", []string{"restoran", "cafe", "kopi", "makan", "food", "burger", "pizza", "nasi", "minuman", "bakery"}},
	{"Transportasi", []string{"grab", "gojek", "taxi", "bensin", "pertamina", "parkir", "tol", "transport"}},
	{"Belanja", []string{"indomaret", "alfamart", "supermarket", "hypermart", "mall", "toko", "superindo"}},
	{"Tagihan", []string{"listrik", "air", "pdam", "telkom", "internet", "wifi", "token", "pln"}},
	{"Kesehatan", []string{"apotek", "farmasi", "kimia farma", "guardian", "rumah sakit", "klinik", "dokter"}},
	{"Pendidikan", []string{"buku", "gramedia", "sekolah", "kursus", "les", "bimbel"}},
}

const defaultCategory = "Lainnya"

// SuggestCategory maps merchant and item names to an expense category name.
// It always returns a category; unmatched receipts land in the catch-all.
func SuggestCategory(merchantName *string, items []Item) string {
	var sb strings.Builder
	if merchantName != nil {
		sb.WriteString(*merchantName)
	}
	for _, item := range items {
		sb.WriteString(" ")
		sb.WriteString(item.Name)
	}
	searchText := strings.ToLower(sb.String())

	for _, category := range categoryKeywords {
		for _, kw := range category.keywords {
			if strings.Contains(searchText, kw) {
				return category.name
			}
		}
	}
	return defaultCategory
}
