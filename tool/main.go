package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/alecthomas/participle"

	. "github.com/dave/jennifer/jen"
)

type SumDecls struct {
	Sums []*Sum `@@*`
}

// Sum is `sum Name : Base, Other = A | B;`. Every variant is a pointer to a
// struct declared by hand in the same package.
type Sum struct {
	Name     string   `"sum" @Ident`
	Bases    []string `(":" @Ident ("," @Ident)*)?`
	Variants []string `"=" @Ident ("|" @Ident)* ";"`
}

func GenerateDecls(pkgname string, t *SumDecls) string {
	f := NewFile(pkgname)
	f.HeaderComment("Code generated by adtGen. DO NOT EDIT.")

	for _, sum := range t.Sums {
		var methods []Code
		for _, base := range sum.Bases {
			methods = append(methods, Id(base))
		}
		methods = append(methods, Id("is_"+sum.Name).Params())

		f.Type().Id(sum.Name).Interface(methods...)

		for _, variant := range sum.Variants {
			f.Func().Params(Op("*").Id(variant)).Id("is_" + sum.Name).Params().Block()
		}
	}

	return fmt.Sprintf("%#v", f)
}

func main() {
	parser := participle.MustBuild(&SumDecls{})

	in := os.Args[1]
	out := os.Args[2]
	pkgname := os.Args[3]

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		panic(err)
	}

	decls := SumDecls{}
	err = parser.ParseBytes(inData, &decls)
	if err != nil {
		panic(err)
	}

	err = ioutil.WriteFile(out, []byte(GenerateDecls(pkgname, &decls)), 0644)
	if err != nil {
		panic(err)
	}
}
