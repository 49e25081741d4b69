package cli

import "fmt"

type CategoryCmd struct {
	Add  CategoryAddCmd  `cmd:"" help:"Create a category if it does not exist."`
	List CategoryListCmd `cmd:"" help:"List categories."`
}

type CategoryAddCmd struct {
	Name string `arg:"" help:"Category name."`
}

func (c *CategoryAddCmd) Run(ctx *Context) error {
	trackers, err := ctx.Trackers()
	if err != nil {
		return err
	}

	if err := trackers.EnsureCategory(c.Name); err != nil {
		return err
	}

	fmt.Printf("Category %q is ready\n", c.Name)
	return nil
}

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	names, err := ctx.Store.GetAllCategories()
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Println("No categories found.")
		return nil
	}

	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
