package freemail_test

import (
	"errors"
	"fmt"

	"github.com/optimode/freemail"
)

func ExampleIsFree() {
	free, _ := freemail.IsFree("user@gmail.com")
	fmt.Println(free)

	free, _ = freemail.IsFree("USER@Yahoo.com")
	fmt.Println(free)

	free, _ = freemail.IsFree("employee@company.com")
	fmt.Println(free)
	// Output:
	// true
	// true
	// false
}

func ExampleIsFree_invalid() {
	_, err := freemail.IsFree("user@")
	fmt.Println(errors.Is(err, freemail.ErrInvalidEmail))
	// Output: true
}

func ExampleIsFreeDomain() {
	fmt.Println(freemail.IsFreeDomain("outlook.com"))
	fmt.Println(freemail.IsFreeDomain("example.com"))
	// Output:
	// true
	// false
}

func ExampleExtractDomain() {
	domain, _ := freemail.ExtractDomain("user@domain@Gmail.com")
	fmt.Println(domain)
	// Output: Gmail.com
}

func ExampleSuggest() {
	fmt.Println(freemail.Suggest("gmial.com"))
	// Output: gmail.com
}
