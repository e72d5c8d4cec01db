package secs2

import (
	"errors"
	"fmt"
	"strings"
)

// ListItem represents an ordered sequence of child items in a SECS-II
// message.
//
// Its length prefix on the wire counts child items, not bytes. The size of
// a ListItem equals the number of items it contains, counted non-recursively.
type ListItem struct {
	baseItem
	values []Item
}

// NewListItem creates a new ListItem containing the given child items in
// order. Nil children are skipped.
func NewListItem(values ...Item) Item {
	item := &ListItem{}

	if len(values) > MaxByteSize {
		item.setErrorMsg("item size limit exceeded")
		return item
	}

	item.values = make([]Item, 0, len(values))
	for _, value := range values {
		if value == nil {
			continue
		}
		item.values = append(item.values, value)
	}

	return item
}

// Get retrieves a nested item by walking the indices level by level.
// Without arguments it returns the list itself.
func (item *ListItem) Get(indices ...int) (Item, error) {
	if len(indices) == 0 {
		return item, nil
	}

	var dataItem Item = item
	for _, idx := range indices {
		if !dataItem.IsList() {
			return nil, errors.New("failed to get nested item")
		}

		listItem, _ := dataItem.(*ListItem)
		if idx < 0 || idx >= listItem.Size() {
			return nil, errors.New("failed to get nested item")
		}
		dataItem = listItem.values[idx]
	}

	return dataItem, nil
}

// ToList retrieves the child items stored within the list.
func (item *ListItem) ToList() ([]Item, error) {
	return item.values, nil
}

// Values returns the child items; the result can be type-asserted to []Item.
func (item *ListItem) Values() any {
	return item.values
}

// Size implements Item.Size(); it returns the number of direct children.
func (item *ListItem) Size() int {
	return len(item.values)
}

// ToBytes serializes the ListItem into its SECS-II byte representation by
// concatenating the encoded children after the element-count header.
//
// If any child fails to serialize, an empty slice is returned and the
// failure is retrievable through Error().
func (item *ListItem) ToBytes() []byte {
	result, err := getHeaderBytes(ListType, len(item.values), 0)
	if err != nil {
		item.setError(err)
		return []byte{}
	}

	for _, value := range item.values {
		nestedResult := value.ToBytes()
		if len(nestedResult) == 0 {
			return []byte{}
		}

		result = append(result, nestedResult...)
	}

	return result
}

// ToSML converts the ListItem into its indented SML representation.
func (item *ListItem) ToSML() string {
	return item.formatSML(0)
}

// Clone creates a deep copy of the ListItem and all of its children.
func (item *ListItem) Clone() Item {
	values := make([]Item, len(item.values))
	for i, v := range item.values {
		values[i] = v.Clone()
	}

	return &ListItem{values: values}
}

// Error returns the first error recorded on the list or any of its children.
func (item *ListItem) Error() error {
	var errs error
	if item.baseItem.itemErr != nil {
		errs = errors.Join(errs, item.baseItem.itemErr)
	}

	for _, v := range item.values {
		if v != nil {
			errs = errors.Join(errs, v.Error())
		}
	}

	return errs
}

// Type returns "list".
func (item *ListItem) Type() string { return ListType }

// IsList returns true, indicating that ListItem is a list data item.
func (item *ListItem) IsList() bool { return true }

// formatSML returns the indented string representation of this list node.
// Each indent level adds 2 spaces as prefix to each line.
func (item *ListItem) formatSML(level int) string {
	indentStr := strings.Repeat("  ", level)
	if item.Size() == 0 {
		return indentStr + "<L[0]>"
	}

	var sb strings.Builder
	sb.Grow(len(item.values) * 20)

	for _, value := range item.values {
		if v, ok := value.(*ListItem); ok {
			sb.WriteString(v.formatSML(level + 1))
			sb.WriteByte('\n')
		} else {
			sb.WriteString(indentStr)
			sb.WriteString("  ")
			sb.WriteString(value.ToSML())
			sb.WriteByte('\n')
		}
	}

	return fmt.Sprintf("%v<L[%d]\n%s%s>", indentStr, item.Size(), sb.String(), indentStr)
}
