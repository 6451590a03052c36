package contracts

// LinkBuilder turns a product slug into a navigation target.
// The card logic never interprets the slug itself.
type LinkBuilder interface {
	Build(slug string) string
}
