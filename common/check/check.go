package check

// PanicIfErr panics if err is not nil.
// Use it only where an error means a programming mistake or a broken build, not bad input.
func PanicIfErr(err error) {
	if err != nil {
		panic(err)
	}
}

// PanicIfNot panics on false.
func PanicIfNot(flag bool) {
	if !flag {
		panic("requirement not met")
	}
}
