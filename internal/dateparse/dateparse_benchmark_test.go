package dateparse

import "testing"

func BenchmarkParseDate(b *testing.B) {
	inputs := []string{
		"2022-01-01",
		"5 Jan 99",
		"tues. 02-03 4:15pm",
		"Wednesday, March 13, 2024",
		"not a date",
	}
	b.ReportAllocs()
	for b.Loop() {
		for _, input := range inputs {
			_, _ = ParseDate(input, ref)
		}
	}
}

func BenchmarkParseTime(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = ParseTime("132pm", ref)
	}
}

func BenchmarkMonthToNumber(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = MonthToNumber("décembre")
	}
}
