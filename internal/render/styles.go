package render

var styles = map[string]string{
	"reset":     "\x1b[0m",
	"bold":      "\x1b[1m",
	"dim":       "\x1b[2m",
	"italic":    "\x1b[3m",
	"underline": "\x1b[4m",
	"blink":     "\x1b[5m",
	"reverse":   "\x1b[7m",
	"hidden":    "\x1b[8m",

	"black":   "\x1b[30m",
	"red":     "\x1b[31m",
	"green":   "\x1b[32m",
	"yellow":  "\x1b[33m",
	"blue":    "\x1b[34m",
	"magenta": "\x1b[35m",
	"cyan":    "\x1b[36m",
	"white":   "\x1b[37m",

	"bg_black":   "\x1b[40m",
	"bg_red":     "\x1b[41m",
	"bg_green":   "\x1b[42m",
	"bg_yellow":  "\x1b[43m",
	"bg_blue":    "\x1b[44m",
	"bg_magenta": "\x1b[45m",
	"bg_cyan":    "\x1b[46m",
	"bg_white":   "\x1b[47m",
}

// Styles returns a copy of the terminal escape table.
func Styles() map[string]string {
	out := make(map[string]string, len(styles))
	for k, v := range styles {
		out[k] = v
	}
	return out
}
