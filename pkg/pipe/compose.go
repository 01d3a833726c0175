package pipe

// Compose returns a function applying stages right to left: the stage passed
// last textually runs first. All stages must share one type; Compose2..
// Compose5 cover type-changing chains.
//
// Example:
//
//	fn := Compose(
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 3 },
//	)
//	fn(5) // (5+3)*2 = 16
func Compose[T any](stages ...func(T) T) func(T) T {
	return func(value T) T {
		result := value
		for i := len(stages) - 1; i >= 0; i-- {
			result = stages[i](result)
		}
		return result
	}
}

// Compose2 returns s2 after s1: the returned function applies s1 first.
func Compose2[A, B, C any](s2 func(B) C, s1 func(A) B) func(A) C {
	return func(value A) C {
		return s2(s1(value))
	}
}

// Compose3 composes three stages right to left.
func Compose3[A, B, C, D any](s3 func(C) D, s2 func(B) C, s1 func(A) B) func(A) D {
	return func(value A) D {
		return s3(s2(s1(value)))
	}
}

// Compose4 composes four stages right to left.
func Compose4[A, B, C, D, E any](s4 func(D) E, s3 func(C) D, s2 func(B) C,
	s1 func(A) B) func(A) E {
	return func(value A) E {
		return s4(s3(s2(s1(value))))
	}
}

// Compose5 composes five stages right to left.
func Compose5[A, B, C, D, E, F any](s5 func(E) F, s4 func(D) E, s3 func(C) D,
	s2 func(B) C, s1 func(A) B) func(A) F {
	return func(value A) F {
		return s5(s4(s3(s2(s1(value)))))
	}
}
