package ast

type ContractMember interface {
	Node
	isContractMember()
}

func (*Storage) isContractMember() {}

func (*Init) isContractMember() {}

func (*Function) isContractMember() {}

func (*Use) isContractMember() {}
