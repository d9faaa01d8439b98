package detector

import "regexp"

// Schema push forms we block. Matching is case-sensitive and word-boundary
// aware so that "pushed" never matches "push".
var schemaPushRes = []*regexp.Regexp{
	// prisma db push, npx prisma db push, dotenv ... prisma db push
	regexp.MustCompile(`\bprisma\s+db\s+push\b`),
	// pnpm --filter @repo/database push
	regexp.MustCompile(`pnpm\s+--filter\s+\S+\s+push\b`),
	// pnpm --filter database prisma push
	regexp.MustCompile(`pnpm\s+--filter\s+\S+\s+prisma\s+push\b`),
}

// IsSchemaPush reports whether command invokes a direct Prisma schema push
// in any of its known forms. Quoted substrings are stripped first.
func IsSchemaPush(command string) bool {
	cleaned := StripQuoted(command)
	for _, re := range schemaPushRes {
		if re.MatchString(cleaned) {
			return true
		}
	}
	return false
}
