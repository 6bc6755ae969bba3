package lint

// Rule identifiers follow a <group>/<check> convention so reports stay
// greppable and individual rules can be referenced in CI output.
const (
	RuleFrontMatterParse  = "frontmatter/parse"
	RuleFrontMatterTitle  = "frontmatter/title"
	RuleTitleLength       = "frontmatter/title-length"
	RuleFrontMatterURL    = "frontmatter/url"
	RuleURLFormat         = "frontmatter/url-format"
	RuleFrontMatterDate   = "frontmatter/date"
	RuleModifiedOrder     = "frontmatter/modified-order"
	RuleAuthors           = "frontmatter/authors"
	RuleFrontMatterSchema = "frontmatter/schema"
	RuleDraft             = "frontmatter/draft"
	RuleEmptyBody         = "body/empty"
	RuleFenceLanguage     = "fence/language"
	RuleDirectiveParse    = "directive/parse"
	RuleDirectiveUnknown  = "directive/unknown"
	RuleDirectiveParams   = "directive/params"
	RuleFileName          = "file/name"
	RuleFileDateMismatch  = "file/date-mismatch"
	RuleUniqueURL         = "corpus/unique-url"
	RuleDuplicateTitle    = "corpus/duplicate-title"
)
