package service

// defaultColors is the fixed palette the dashboard cycles through when a new
// position is created. Matches the frontend's chart palette.
var defaultColors = []string{
	"#3B82F6", // blue-500
	"#10B981", // emerald-500
	"#F59E0B", // amber-500
	"#EF4444", // red-500
	"#8B5CF6", // violet-500
	"#EC4899", // pink-500
	"#06B6D4", // cyan-500
	"#F97316", // orange-500
}

// displayColor returns the palette color for the n-th position, round-robin.
func displayColor(index int) string {
	return defaultColors[index%len(defaultColors)]
}
