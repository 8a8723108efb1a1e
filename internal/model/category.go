package model

// CategoryType indicates what kind of entries a category classifies.
type CategoryType string

const (
	// CategoryTypeExpense classifies spending entries.
	CategoryTypeExpense CategoryType = "expense"
	// CategoryTypeIncome classifies earning entries.
	CategoryTypeIncome CategoryType = "income"
	// CategoryTypeDebtLoan classifies debt and loan entries.
	CategoryTypeDebtLoan CategoryType = "debt_loan"
)

// Category is a node in the backend's category tree. The tree is one
// level deep: parents carry Children, children carry ParentID.
type Category struct {
	ID        int64        `json:"id"`
	Type      CategoryType `json:"type"`
	Name      string       `json:"name"`
	Icon      string       `json:"icon"`
	ParentID  *int64       `json:"parent_id"`
	Children  []Category   `json:"children"`
	WalletIDs []int64      `json:"wallet_ids"`
}

// ParentLookup maps every category name in the tree to its parent's
// display name (parents map to themselves). Top-spending widgets use it
// to fold child categories into their parent's row.
func ParentLookup(tree []Category) map[string]string {
	lookup := make(map[string]string, len(tree)*2)
	for _, parent := range tree {
		lookup[parent.Name] = parent.Name
		for _, child := range parent.Children {
			lookup[child.Name] = parent.Name
		}
	}
	return lookup
}
