package framework

// AttributeStyle is the casing convention for attribute names.
type AttributeStyle string

const (
	CamelCase AttributeStyle = "camelCase"
	KebabCase AttributeStyle = "kebab-case"
)

// ClosingTagStyle controls how childless elements are closed.
type ClosingTagStyle string

const (
	SelfClosing ClosingTagStyle = "self-closing"
	Explicit    ClosingTagStyle = "explicit"
)

// Profile describes the syntax rules of one framework dialect.
// EventHandling and SlotSyntax are shown to readers only; generation ignores them.
type Profile struct {
	ComponentPrefix string
	AttributeStyle  AttributeStyle
	ClosingTagStyle ClosingTagStyle
	EventHandling   string
	SlotSyntax      string
	Label           string
	SyntaxLanguage  string
}

var profiles = map[ID]Profile{
	WebComponent: {
		ComponentPrefix: "elvt-",
		AttributeStyle:  KebabCase,
		ClosingTagStyle: Explicit,
		EventHandling:   `@event="handler"`,
		SlotSyntax:      `slot="name"`,
		Label:           "Web Components",
		SyntaxLanguage:  "markup",
	},
	React: {
		ComponentPrefix: "Elvt",
		AttributeStyle:  CamelCase,
		ClosingTagStyle: SelfClosing,
		EventHandling:   "onEvent={handler}",
		SlotSyntax:      `slot="name"`,
		Label:           "React",
		SyntaxLanguage:  "jsx",
	},
	Angular: {
		ComponentPrefix: "elvt-",
		AttributeStyle:  KebabCase,
		ClosingTagStyle: Explicit,
		EventHandling:   `(event)="handler($event)"`,
		SlotSyntax:      `slot="name"`,
		Label:           "Angular",
		SyntaxLanguage:  "typescript",
	},
	Vue: {
		ComponentPrefix: "elvt-",
		AttributeStyle:  KebabCase,
		ClosingTagStyle: Explicit,
		EventHandling:   `@event="handler"`,
		SlotSyntax:      `slot="name"`,
		Label:           "Vue",
		SyntaxLanguage:  "markup",
	},
	Svelte: {
		ComponentPrefix: "elvt-",
		AttributeStyle:  KebabCase,
		ClosingTagStyle: Explicit,
		EventHandling:   "on:event={handler}",
		SlotSyntax:      `slot="name"`,
		Label:           "Svelte",
		SyntaxLanguage:  "markup",
	},
	HTML: {
		ComponentPrefix: "elvt-",
		AttributeStyle:  KebabCase,
		ClosingTagStyle: Explicit,
		EventHandling:   `addEventListener("event", handler)`,
		SlotSyntax:      `slot="name"`,
		Label:           "HTML",
		SyntaxLanguage:  "markup",
	},
}

// Lookup returns the profile for id. Profiles are values, so callers cannot
// mutate the table.
func Lookup(id ID) (Profile, bool) {
	p, ok := profiles[id]
	return p, ok
}
