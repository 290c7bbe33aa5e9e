// component/tower.go
package component

// Tower — a placed tower. Light and Heavy share this type and differ only in
// the numbers carried by their Combat component.
type Tower struct {
	DefID      string // ID from the tower library
	IsSelected bool   // range circle is drawn while selected
}
