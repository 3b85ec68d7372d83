package repository

import "testing"

func TestLocalityToken(t *testing.T) {
	cases := []struct {
		name    string
		address string
		want    string
	}{
		{"full address", "123 Main St, Springfield, IL", "Springfield, IL"},
		{"street and city", "500 Elm St, Austin", "Austin"},
		{"no comma", "Springfield", "Springfield"},
		{"trailing comma", "123 Main St,", "123 Main St,"},
		{"padded tail", "9 Oak Dr,  Tulsa, OK ", "Tulsa, OK"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := localityToken(tc.address); got != tc.want {
				t.Fatalf("localityToken(%q) = %q, want %q", tc.address, got, tc.want)
			}
		})
	}
}
