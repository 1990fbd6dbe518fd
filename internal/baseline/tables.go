package baseline

// offsets expands groups of characters sharing one offset into a lookup.
func offsets(groups map[int]string) map[rune]int {
	out := make(map[rune]int)
	for offset, chars := range groups {
		for _, r := range chars {
			out[r] = offset
		}
	}
	return out
}

var tables = map[int]Table{
	8: {Shift: 0, Offsets: offsets(map[int]string{
		4:  `'"`,
		2:  "gjpqy@:,",
		1:  "$(){}[];_|",
		-1: "+<>",
	})},
	9: {Shift: 0, Offsets: offsets(map[int]string{
		4:  `'"`,
		3:  "@",
		2:  "gjpqy,",
		1:  "$(){}[]:;_|",
		-2: "+<>",
	})},
	10: {Shift: 0, Offsets: offsets(map[int]string{
		4:  `'"`,
		3:  "gjpqy@",
		2:  ":;,",
		1:  "$(){}[]_|",
		-1: "+<>",
	})},
	11: {Shift: 0, Offsets: offsets(map[int]string{
		3:  `gjpqy'"`,
		2:  "@,",
		1:  "(){}[]:;_|",
		-1: "+<>",
	})},
	12: {Shift: 0, Offsets: offsets(map[int]string{
		3:  `gpqy@'"`,
		2:  "j,*",
		1:  "(){}[]:;_|",
		-2: "+-=<>",
	})},
	14: {Shift: 1, Offsets: offsets(map[int]string{
		4:  "gpqy",
		3:  `j@'",`,
		2:  ":",
		1:  "$*(){}[];_|",
		-2: "+-=<>",
	})},
	16: {Shift: 4, Offsets: offsets(map[int]string{
		6:  `'"`,
		4:  "gjpqy@",
		3:  ",",
		2:  ":",
		1:  "$*(){}[];_|",
		-2: "+<>",
	})},
	18: {Shift: 4, Offsets: offsets(map[int]string{
		6:  `'"`,
		5:  "gjpqy@",
		4:  ",",
		2:  "(){}[]:;",
		1:  "$*_|",
		-1: "+<>",
	})},
	20: {Shift: 5, Offsets: offsets(map[int]string{
		7:  `'"`,
		6:  "@",
		5:  "gjpqy",
		4:  ",",
		3:  ":",
		2:  "(){}[];",
		1:  "KL$*_|",
		-3: "+<>",
	})},
	22: {Shift: 4, Offsets: offsets(map[int]string{
		6:  `gjpqy'"`,
		5:  "@",
		4:  ",",
		3:  ":",
		2:  "$(){}[];",
		1:  "*_|",
		-1: "-=",
		-3: "+<>",
	})},
	24: {Shift: 8, Offsets: offsets(map[int]string{
		10: `'"`,
		7:  "@",
		6:  "gjpqy",
		4:  ",",
		3:  ":",
		2:  "$(){}[];",
		1:  "*_|",
		-1: "-=",
		-3: "+<>",
	})},
	26: {Shift: 6, Offsets: offsets(map[int]string{
		8:  `'"`,
		7:  "gjpqy",
		6:  "@",
		5:  ",",
		4:  ":",
		2:  "$(){}[];_|",
		1:  "*",
		-1: "-=",
		-3: "+<>",
	})},
	28: {Shift: 4, Offsets: offsets(map[int]string{
		7:  "gpqy@",
		6:  `j'"`,
		5:  ",",
		4:  "*;",
		3:  "(){}[]:",
		2:  "$_|",
		1:  "Q",
		-2: "-=",
		-3: "+<>",
	})},
	32: {Shift: 6, Offsets: offsets(map[int]string{
		9:  "gpqy",
		8:  `j@'"`,
		6:  ",",
		4:  "*;",
		3:  "$(){}[]:_|",
		1:  "Q",
		-2: "-=",
		-3: "+<>",
	})},
	36: {Shift: 8, Offsets: offsets(map[int]string{
		10: `gjpqy'"`,
		9:  "@",
		7:  ",",
		4:  "(){}[];",
		3:  "$:_|",
		2:  "Q",
		1:  "CGJOSU*",
		-2: "-=",
		-3: "<>",
		-4: "+",
	})},
	40: {Shift: 11, Offsets: offsets(map[int]string{
		13: `'"`,
		11: "gjpqy",
		10: "@",
		8:  ",",
		4:  "(){}[];",
		3:  "$:_|",
		2:  "Q",
		1:  "CGJOSU*",
		-2: "-=",
		-3: "<>",
		-4: "+",
	})},
	48: {Shift: 13, Offsets: offsets(map[int]string{
		15: `'"`,
		14: "gjpqy",
		12: "@",
		9:  ",",
		5:  "(){}[]",
		4:  "$:;_",
		3:  "Q*|",
		1:  "CGJOSU",
		-2: "-=",
		-3: "<>",
		-4: "+",
	})},
	72: {Shift: 19, Offsets: offsets(map[int]string{
		21: `'"`,
		20: "gjy",
		19: "pq",
		18: "@",
		15: ",",
		7:  "*(){}[];",
		6:  "$:_",
		5:  "|",
		4:  "Q",
		2:  "CGOSU",
		1:  "J",
		-4: "-=",
		-8: "<>+",
	})},
}
