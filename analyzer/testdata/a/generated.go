// Code generated by hand for testing. DO NOT EDIT.

package a

func generated() int {
	return missing
}
