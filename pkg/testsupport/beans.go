package testsupport

// Address is a sample nested bean.
type Address struct {
	Street string
	City   string
}

// Person is a sample bean exercising scalar, list, nested pointer and
// tagged properties.
type Person struct {
	Name     string
	Email    string
	Age      int
	Admin    bool
	Tags     []string
	Address  *Address
	Nickname string `bean:"nick"`
	Internal string `bean:"-"`
}

// NewPerson returns a populated Person.
func NewPerson() *Person {
	return &Person{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Age:     36,
		Tags:    []string{"math", "poetry"},
		Address: &Address{Street: "12 St James's Square", City: "London"},
	}
}
