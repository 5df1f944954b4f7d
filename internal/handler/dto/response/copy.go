package response

import "github.com/jinzhu/copier"

// copyFields copies same-named fields. copier only fails on mismatched
// kinds, which is a programming error here.
func copyFields(to, from any) {
	if err := copier.Copy(to, from); err != nil {
		panic("response mapping: " + err.Error())
	}
}
