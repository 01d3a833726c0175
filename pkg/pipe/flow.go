package pipe

// Flow returns a reusable function applying stages left to right.
// Flow(s1, s2)(v) is identical to Pipe(v, s1, s2). The returned closure
// captures the stage slice at construction and never mutates it.
func Flow[T any](stages ...func(T) T) func(T) T {
	return func(value T) T {
		return Pipe(value, stages...)
	}
}

// Flow2 returns a function applying s1 then s2.
func Flow2[A, B, C any](s1 func(A) B, s2 func(B) C) func(A) C {
	return func(value A) C {
		return s2(s1(value))
	}
}

// Flow3 returns a function applying three stages in order.
func Flow3[A, B, C, D any](s1 func(A) B, s2 func(B) C, s3 func(C) D) func(A) D {
	return func(value A) D {
		return s3(s2(s1(value)))
	}
}

// Flow4 returns a function applying four stages in order.
func Flow4[A, B, C, D, E any](s1 func(A) B, s2 func(B) C, s3 func(C) D,
	s4 func(D) E) func(A) E {
	return func(value A) E {
		return s4(s3(s2(s1(value))))
	}
}

// Flow5 returns a function applying five stages in order.
func Flow5[A, B, C, D, E, F any](s1 func(A) B, s2 func(B) C, s3 func(C) D,
	s4 func(D) E, s5 func(E) F) func(A) F {
	return func(value A) F {
		return s5(s4(s3(s2(s1(value)))))
	}
}

// Flow6 returns a function applying six stages in order.
func Flow6[A, B, C, D, E, F, G any](s1 func(A) B, s2 func(B) C, s3 func(C) D,
	s4 func(D) E, s5 func(E) F, s6 func(F) G) func(A) G {
	return func(value A) G {
		return s6(s5(s4(s3(s2(s1(value))))))
	}
}

// Flow7 returns a function applying seven stages in order.
func Flow7[A, B, C, D, E, F, G, H any](s1 func(A) B, s2 func(B) C, s3 func(C) D,
	s4 func(D) E, s5 func(E) F, s6 func(F) G, s7 func(G) H) func(A) H {
	return func(value A) H {
		return s7(s6(s5(s4(s3(s2(s1(value)))))))
	}
}
