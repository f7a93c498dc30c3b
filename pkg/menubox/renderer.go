package menubox

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// NewBundle creates an i18n bundle that loads TOML message files, matching
// the format menu definitions use.
func NewBundle(lang language.Tag) *i18n.Bundle {
	bundle := i18n.NewBundle(lang)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

// ItemProperties is the declarative input an ItemRenderer turns into a
// renderable node. The core fills it from the item definition; renderers
// must set the "key" attribute on the returned node for interactive items,
// since click resolution reads it back.
type ItemProperties struct {
	Key        string
	Label      string
	Checked    bool
	Enabled    bool
	HasSubmenu bool
	CSSClasses []string
	Icon       string
}

// ItemRenderer builds the renderable node for one item. It is a replaceable
// strategy: the core depends only on this contract and never on how a node
// looks.
type ItemRenderer interface {
	Create(doc Document, props ItemProperties) Element
}

// DefaultRenderer builds a plain item node: a "item" element carrying the
// key attribute, state classes, an optional icon child, and a label child.
type DefaultRenderer struct{}

func (DefaultRenderer) Create(doc Document, props ItemProperties) Element {
	node := doc.CreateElement("item")
	if props.Key != "" {
		node.SetAttr("key", props.Key)
	}
	if props.Checked {
		node.AddClass("checked")
	}
	if !props.Enabled {
		node.AddClass("disabled")
	}
	if props.HasSubmenu {
		node.AddClass("has-submenu")
	}
	for _, class := range props.CSSClasses {
		if class = strings.TrimSpace(class); class != "" {
			node.AddClass(class)
		}
	}

	if props.Icon != "" {
		icon := doc.CreateElement("icon")
		icon.SetAttr("src", props.Icon)
		node.AppendChild(icon)
	}

	label := doc.CreateElement("label")
	label.SetText(props.Label)
	node.AppendChild(label)

	return node
}

// LocalizedRenderer wraps another renderer and translates item labels
// through a go-i18n localizer before rendering. The label text doubles as
// the message id; labels without a matching message render unchanged.
type LocalizedRenderer struct {
	Inner     ItemRenderer
	Localizer *i18n.Localizer
}

// NewLocalizedRenderer builds a LocalizedRenderer over DefaultRenderer for
// the given bundle and language preferences.
func NewLocalizedRenderer(bundle *i18n.Bundle, langs ...string) *LocalizedRenderer {
	return &LocalizedRenderer{
		Inner:     DefaultRenderer{},
		Localizer: i18n.NewLocalizer(bundle, langs...),
	}
}

func (r *LocalizedRenderer) Create(doc Document, props ItemProperties) Element {
	if r.Localizer != nil && props.Label != "" {
		translated, err := r.Localizer.Localize(&i18n.LocalizeConfig{
			MessageID:      props.Label,
			DefaultMessage: &i18n.Message{ID: props.Label, Other: props.Label},
		})
		if err == nil && translated != "" {
			props.Label = translated
		}
	}

	inner := r.Inner
	if inner == nil {
		inner = DefaultRenderer{}
	}
	return inner.Create(doc, props)
}
