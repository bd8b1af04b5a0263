package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
)

const mistPerSUI = 1_000_000_000

// formatCount renders a decimal string with thousands separators, or returns
// it unchanged if it is not an integer.
func formatCount(s string) string {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return s
	}
	return humanize.BigComma(n)
}

// formatSUI renders a MIST amount as SUI, e.g. "1500000000" -> "1.5 SUI".
func formatSUI(mist string) string {
	n, ok := new(big.Int).SetString(mist, 10)
	if !ok {
		return mist
	}

	whole, frac := new(big.Int).QuoRem(n, big.NewInt(mistPerSUI), new(big.Int))
	out := humanize.BigComma(whole)
	if frac.Sign() != 0 {
		digits := strings.TrimRight(fmt.Sprintf("%09d", frac.Abs(frac)), "0")
		out += "." + digits
	}
	return out + " SUI"
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
