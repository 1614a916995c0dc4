package ast

type Item interface {
	Node
	isItem()
}

func (*Contract) isItem() {}

func (*Function) isItem() {}

func (*Use) isItem() {}

func (*Struct) isItem() {}
