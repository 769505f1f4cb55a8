package resolver_test

import (
	"fmt"

	"github.com/katalvlaran/casegen/model"
	"github.com/katalvlaran/casegen/resolver"
)

// ExampleOrder places the size variable ahead of the array it sizes.
func ExampleOrder() {
	vars := []model.Variable{
		{ID: "arr", Type: model.TypeArray, Constraint: &model.ArrayConstraint{
			SizeType: model.SizeLinked, LinkedVariable: "n"}},
		{ID: "n", Type: model.TypeInt, Constraint: &model.ScalarConstraint{}},
	}

	ids, err := resolver.OrderIDs(vars)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ids)
	// Output: [n arr]
}

// ExampleOrder_cycle reports the variable that closed the loop.
func ExampleOrder_cycle() {
	dep := func(id string) *model.ScalarConstraint {
		return &model.ScalarConstraint{DependsOnValue: &model.ValueDependency{
			VariableID: id, Relationship: model.LessThan}}
	}
	vars := []model.Variable{
		{ID: "a", Name: "A", Type: model.TypeInt, Constraint: dep("b")},
		{ID: "b", Name: "B", Type: model.TypeInt, Constraint: dep("a")},
	}

	_, err := resolver.Order(vars)
	fmt.Println(err)
	// Output: circular dependency detected involving A
}
