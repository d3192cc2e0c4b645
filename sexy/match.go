package sexy

import "fmt"

// Match checks actual against pattern. In a pattern, _ matches any one
// datum and ... at the end of a list matches any remaining items. A bare
// symbol also matches a list headed by that symbol, so Int matches (Int 7).
// The error names the path of the first mismatch.
func Match(pattern, actual *Node) error {
	return match(pattern, actual, "root")
}

func match(pattern, actual *Node, path string) error {
	if pattern.IsWildcard() {
		return nil
	}

	if pattern.Type == NodeSymbol && actual.Type == NodeList &&
		len(actual.Items) > 0 && actual.Items[0].Type == NodeSymbol &&
		actual.Items[0].Text == pattern.Text {
		return nil
	}

	if pattern.Type != actual.Type {
		return fmt.Errorf("at %s: expected %s %s, got %s %s", path, pattern.Type, pattern, actual.Type, actual)
	}
	if pattern.IsAtom() {
		if pattern.Text != actual.Text {
			return fmt.Errorf("at %s: expected %s, got %s", path, pattern, actual)
		}
		return nil
	}

	for i, item := range pattern.Items {
		if item.Type == NodeEllipsis {
			if i != len(pattern.Items)-1 {
				return fmt.Errorf("at %s: ... must be the last item of a list", path)
			}
			return nil
		}
		if i >= len(actual.Items) {
			return fmt.Errorf("at %s: expected %s, got end of list %s", path, item, actual)
		}
		if err := match(item, actual.Items[i], fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return err
		}
	}
	if len(actual.Items) > len(pattern.Items) {
		return fmt.Errorf("at %s: unexpected %s in %s", path, actual.Items[len(pattern.Items)], actual)
	}
	return nil
}
