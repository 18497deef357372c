package mapfile

// property parses '"key" "value"'.
func (s *scanner) property() (propertyPair, error) {
	key, err := s.quotedString()
	if err != nil {
		return propertyPair{}, err
	}
	if err := s.expectByte(' ', "' ' between property key and value"); err != nil {
		return propertyPair{}, err
	}
	value, err := s.quotedString()
	if err != nil {
		return propertyPair{}, err
	}
	return propertyPair{key: key, value: value}, nil
}
