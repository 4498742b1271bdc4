package lexer

// matcherFn tries to consume the state's current chunk, returning
// whether it consumed anything (and, if so, having already emitted any
// resulting tokens and advanced the position). A nil error with
// consumed=false means "not my lexeme, try the next matcher".
type matcherFn func(*State) (bool, *SyntaxError)

// dispatchOrder is §4.1's fixed matcher precedence:
// identifier -> comment -> whitespace -> line -> heredoc -> string ->
// number -> regex -> embedded-JS -> literal/operator (guaranteed
// fallback).
var dispatchOrder = []matcherFn{
	(*State).tryIdentifier,
	(*State).tryComment,
	(*State).tryWhitespace,
	(*State).tryLine,
	(*State).tryHeredoc,
	(*State).tryString,
	(*State).tryNumber,
	(*State).tryRegex,
	(*State).tryEmbeddedJS,
	(*State).tryOperator,
}

// dispatch is the token dispatcher of §4.1/component 7: the main scan
// loop body, trying each matcher in precedence order and taking the
// first that consumes input.
func dispatch(s *State) (bool, *SyntaxError) {
	for _, try := range dispatchOrder {
		consumed, err := try(s)
		if err != nil {
			return false, err
		}
		if consumed {
			return true, nil
		}
	}
	return false, nil
}
