package cv

import "testing"

func TestIsAviationCV(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "two license abbreviations",
			text: "Holder of ATPL and CPL licenses, seeking a captain role.",
			want: true,
		},
		{
			name: "flight hours plus supporting keywords",
			text: `Experienced pilot with 4500 flight hours.
PIC hours: 2000. Type Rating on Boeing 737.
Strong CRM and flight planning background. ILS approaches. FMS operation.`,
			want: true,
		},
		{
			name: "aviation title in header plus keywords",
			text: `Jane Doe
First Officer
Skilled in flight planning, navigation systems and CRM procedures.`,
			want: true,
		},
		{
			name: "software cv",
			text: `John Smith
Senior Software Engineer with 10 years of experience in Java and Go.
Built distributed systems and microservices at scale.`,
			want: false,
		},
		{
			name: "single license mention only",
			text: "Mentions PPL once with no other signals whatsoever.",
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsAviationCV(tt.text); got != tt.want {
				t.Errorf("IsAviationCV() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContainsAnyWordBoundary(t *testing.T) {
	t.Parallel()

	// Word-boundary matching must not fire on substrings of longer words.
	if containsAnyWord("Aeronautical Engineering graduate", []string{"Engineer"}) {
		t.Error("matched Engineer inside Engineering")
	}
	if !containsAnyWord("Flight Engineer at Acme", []string{"Engineer"}) {
		t.Error("did not match whole word Engineer")
	}
}
